package email

// PreviewData holds sample data for every template, keyed by template name.
var PreviewData = map[Template]map[string]string{
	TemplateLowStock: {
		"ProductID":   "42",
		"ProductName": "M8 hex bolt",
		"Quantity":    "3",
		"Threshold":   "5",
		"AreaID":      "2",
	},
}
