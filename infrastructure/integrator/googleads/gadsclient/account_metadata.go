package gadsclient

import (
	"errors"

	gadsdomain "github.com/vfg2006/ads-optimizer-api/infrastructure/integrator/googleads/domain"
)

// GetCustomerMetadata busca os metadados da conta (nome, fuso horário, moeda)
func (c *GoogleAdsClient) GetCustomerMetadata(customerID string) (*gadsdomain.Customer, error) {
	query := `
		SELECT
			customer.id,
			customer.descriptive_name,
			customer.currency_code,
			customer.time_zone
		FROM customer`

	rows, err := c.search(customerID, query)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 || rows[0].Customer == nil {
		return nil, errors.New("no customer data found")
	}

	return rows[0].Customer, nil
}
