package fraudtypes

import "github.com/JaimeStill/curator/pkg/repository"

const columns = "id, name, description, created_at"

func scanFraudType(s repository.Scanner) (FraudType, error) {
	var ft FraudType
	err := s.Scan(
		&ft.ID,
		&ft.Name,
		&ft.Description,
		&ft.CreatedAt,
	)
	return ft, err
}
