package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/stonecrusher-api/internal/application/dto"
	"github.com/jhoicas/stonecrusher-api/internal/domain"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
)

// DefaultAccounts cuentas iniciales de la planta, una por rol.
var DefaultAccounts = []dto.RegisterRequest{
	{Email: "admin@example.com", Password: "Admin123!", Role: entity.RoleAdmin},
	{Email: "partner1@example.com", Password: "Partner123!", Role: entity.RolePartner},
	{Email: "operator1@example.com", Password: "Operator123!", Role: entity.RoleOperator},
}

// Seed da de alta las cuentas que aún no existen. Devuelve cuántas creó.
func (uc *AuthUseCase) Seed(ctx context.Context, accounts []dto.RegisterRequest) (int, error) {
	created := 0
	for _, a := range accounts {
		_, err := uc.Register(ctx, a)
		if errors.Is(err, domain.ErrDuplicate) {
			continue
		}
		if err != nil {
			return created, fmt.Errorf("seed %s: %w", a.Email, err)
		}
		created++
	}
	return created, nil
}
