package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/labbench/internal/common"
	"github.com/dmitrijs2005/labbench/internal/services"
)

func (a *App) Register(ctx context.Context) error {

	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		printlnFn("error: " + err.Error())
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		printlnFn("error: " + err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		printlnFn("error: " + err.Error())
		return err
	}
	defer common.WipeByteArray(password)

	resp, err := a.auth.Register(ctx, services.RegisterRequest{
		Username: username,
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		printlnFn("error: " + err.Error())
		return err
	}

	printlnFn(resp.Message)
	return nil
}

func (a *App) Login(ctx context.Context) error {

	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		printlnFn("error: " + err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		printlnFn("error: " + err.Error())
		return err
	}
	defer common.WipeByteArray(password)

	resp, err := a.auth.Login(ctx, services.LoginRequest{
		Username: username,
		Password: string(password),
	})
	if err != nil {
		printlnFn("error: " + err.Error())
		return err
	}

	printlnFn(resp.Message)
	return nil
}

func (a *App) Whoami(ctx context.Context) error {

	u, err := a.auth.CurrentUser(ctx)
	if err != nil {
		printlnFn("error: " + err.Error())
		return err
	}

	if u == nil {
		printlnFn("Not logged in")
		return nil
	}

	printlnFn(fmt.Sprintf("%s <%s> (id %d, registered %s)", u.Username, u.Email, u.ID, u.CreatedAt))
	return nil
}

func (a *App) Logout(ctx context.Context) error {

	resp, err := a.auth.Logout(ctx)
	if err != nil {
		printlnFn("error: " + err.Error())
		return err
	}

	printlnFn(resp.Message)
	return nil
}
