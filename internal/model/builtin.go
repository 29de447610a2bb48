package model

// Latin returns the default English QWERTY keyboard.
func Latin() *Keyboard {
	return New("latin",
		CharRow("Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P"),
		CharRow("A", "S", "D", "F", "G", "H", "J", "K", "L"),
		sideButtonRow("Z", "X", "C", "V", "B", "N", "M"),
		bottomRow(),
	)
}

// Cyrillic returns the Russian ЙЦУКЕН keyboard.
func Cyrillic() *Keyboard {
	return New("cyrillic",
		CharRow("Й", "Ц", "У", "К", "Е", "Н", "Г", "Ш", "Щ", "З", "Х"),
		CharRow("Ф", "Ы", "В", "А", "П", "Р", "О", "Л", "Д", "Ж", "Э"),
		sideButtonRow("Я", "Ч", "С", "М", "И", "Т", "Ь", "Б", "Ю"),
		bottomRow(),
	)
}

// sideButtonRow wraps character keys with shift and backspace.
func sideButtonRow(labels ...string) Row {
	keys := make([]Key, 0, len(labels)+2)
	keys = append(keys, NewKey(Shift, "⇧"))
	for _, l := range labels {
		keys = append(keys, CharKey(l))
	}
	keys = append(keys, NewKey(Backspace, "⌫"))
	return NewRow(RoleSideButton, keys...)
}

func bottomRow() Row {
	return NewRow(RoleEquallySpaced,
		NewKey(ModeChange, "123"),
		NewKey(KeyboardChange, "🌐"),
		NewKey(Space, "space").WithOutput(" "),
		NewKey(Return, "return").WithOutput("\n"),
	)
}
