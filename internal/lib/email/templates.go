package email

// Template names an HTML file under templates/.
type Template string

const (
	TemplateLowStock Template = "low_stock"
)
