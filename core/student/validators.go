package student

import (
	"context"

	"github.com/go-playground/validator/v10"
)

func (ns *NewStudent) Validate(ctx context.Context, validate *validator.Validate, svc *Service) error {
	ns.clean()
	if err := validate.Struct(ns); err != nil {
		return err
	}
	return svc.checkUniqueness(ctx, ns.Email)
}

func (up *UpdateProfile) Validate(validate *validator.Validate) error {
	up.clean()
	return validate.Struct(up)
}
