package components

const (
	ColumnWidth = 38 // total column box width
	CardWidth   = 34 // card box width inside a column

	nameMaxLength = 26 // display length for card names before truncation
	descMaxLength = 60 // display length for descriptions on cards
)
