package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/labbench/internal/models"
	"github.com/dmitrijs2005/labbench/internal/services"
)

// Command names are part of the interface with the GUI front-end.
const (
	CmdRegisterUser   = "register_user"
	CmdLoginUser      = "login_user"
	CmdLogoutUser     = "logout_user"
	CmdGetCurrentUser = "get_current_user"

	CmdGetPreferences    = "get_preferences"
	CmdUpdatePreferences = "update_preferences"

	CmdSaveRecipe   = "save_recipe"
	CmdListRecipes  = "list_recipes"
	CmdDeleteRecipe = "delete_recipe"

	CmdSaveMeasurement   = "save_measurement"
	CmdListMeasurements  = "list_measurements"
	CmdDeleteMeasurement = "delete_measurement"
)

type deleteRequest struct {
	ID string `json:"id"`
}

func decode[T any](payload json.RawMessage) (T, error) {
	var v T
	if len(payload) == 0 {
		return v, fmt.Errorf("missing payload")
	}
	if err := json.Unmarshal(payload, &v); err != nil {
		return v, fmt.Errorf("invalid payload: %w", err)
	}
	return v, nil
}

func (a *App) registerCommands() {
	a.registry.Register(CmdRegisterUser, func(ctx context.Context, payload json.RawMessage) (any, error) {
		req, err := decode[services.RegisterRequest](payload)
		if err != nil {
			return nil, err
		}
		return a.auth.Register(ctx, req)
	})

	a.registry.Register(CmdLoginUser, func(ctx context.Context, payload json.RawMessage) (any, error) {
		req, err := decode[services.LoginRequest](payload)
		if err != nil {
			return nil, err
		}
		return a.auth.Login(ctx, req)
	})

	a.registry.Register(CmdLogoutUser, func(ctx context.Context, payload json.RawMessage) (any, error) {
		return a.auth.Logout(ctx)
	})

	a.registry.Register(CmdGetCurrentUser, func(ctx context.Context, payload json.RawMessage) (any, error) {
		return a.auth.CurrentUser(ctx)
	})

	a.registry.Register(CmdGetPreferences, func(ctx context.Context, payload json.RawMessage) (any, error) {
		return a.prefs.Get(ctx)
	})

	a.registry.Register(CmdUpdatePreferences, func(ctx context.Context, payload json.RawMessage) (any, error) {
		p, err := decode[models.Preferences](payload)
		if err != nil {
			return nil, err
		}
		return a.prefs.Update(ctx, p)
	})

	a.registry.Register(CmdSaveRecipe, func(ctx context.Context, payload json.RawMessage) (any, error) {
		rec, err := decode[models.Recipe](payload)
		if err != nil {
			return nil, err
		}
		return a.recipes.Save(ctx, rec)
	})

	a.registry.Register(CmdListRecipes, func(ctx context.Context, payload json.RawMessage) (any, error) {
		return a.recipes.List(ctx)
	})

	a.registry.Register(CmdDeleteRecipe, func(ctx context.Context, payload json.RawMessage) (any, error) {
		req, err := decode[deleteRequest](payload)
		if err != nil {
			return nil, err
		}
		return nil, a.recipes.Delete(ctx, req.ID)
	})

	a.registry.Register(CmdSaveMeasurement, func(ctx context.Context, payload json.RawMessage) (any, error) {
		m, err := decode[models.Measurement](payload)
		if err != nil {
			return nil, err
		}
		return a.measurements.Save(ctx, m)
	})

	a.registry.Register(CmdListMeasurements, func(ctx context.Context, payload json.RawMessage) (any, error) {
		return a.measurements.List(ctx)
	})

	a.registry.Register(CmdDeleteMeasurement, func(ctx context.Context, payload json.RawMessage) (any, error) {
		req, err := decode[deleteRequest](payload)
		if err != nil {
			return nil, err
		}
		return nil, a.measurements.Delete(ctx, req.ID)
	})
}
