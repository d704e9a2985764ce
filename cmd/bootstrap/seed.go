package bootstrap

import (
	"context"
	"log/slog"

	"pta-storefront/internal/domain/user"
	"pta-storefront/internal/pkg/config"
	"pta-storefront/internal/usecase/commands"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(SeedAdmin),
)

func SeedAdmin(lc fx.Lifecycle, cfg config.Config, staff commands.StaffCommands) {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			created, err := staff.EnsureStaff(ctx, cfg.Admin.Email, cfg.Admin.Password, user.RoleAdmin)
			if err != nil {
				return err
			}
			if !created {
				slog.Info("admin account already exists", "email", cfg.Admin.Email)
			}
			return nil
		},
	})
}
