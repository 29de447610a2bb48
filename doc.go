// Package kbd lays out on-screen keyboards with linear constraints.
//
// A keyboard is described as rows of typed keys. Installing it into a
// Container generates the constraints that size and space every key for
// the container's bounds and solves them:
//
//	c, err := kbd.NewContainer(kbd.WithBounds(kbd.NewRect(0, 0, 320, 216)))
//	if err != nil {
//		return err
//	}
//	if err := c.Install(kbd.Latin(), kbd.DefaultParameters()); err != nil {
//		return err
//	}
//	for _, k := range c.Keys() {
//		fmt.Println(k.Key.Label, k.Frame)
//	}
//
// Users import this single package for the public API: keyboard models,
// layout parameters, geometry types and the container.
package kbd
