package email

import (
	"fmt"
	"strconv"
)

// LowStockAlert describes a product that reached the low stock threshold.
type LowStockAlert struct {
	ProductID   int
	ProductName string
	Quantity    int
	Threshold   int
	AreaID      int
}

// SendLowStockAlert notifies the stock alert recipient about a product
// running low.
func (c *Client) SendLowStockAlert(to string, alert LowStockAlert) error {
	data := map[string]string{
		"ProductID":   strconv.Itoa(alert.ProductID),
		"ProductName": alert.ProductName,
		"Quantity":    strconv.Itoa(alert.Quantity),
		"Threshold":   strconv.Itoa(alert.Threshold),
		"AreaID":      strconv.Itoa(alert.AreaID),
	}

	return c.SendEmail(
		to,
		fmt.Sprintf("Low stock: %s", alert.ProductName),
		TemplateLowStock,
		data,
	)
}
