package main

import (
	"context"
	"fmt"

	"github.com/a-h/contexthelp"
)

type VersionCommand struct {
}

func (c VersionCommand) Run(ctx context.Context) (err error) {
	fmt.Println(contexthelp.Version)
	return nil
}
