package middleware

import "github.com/danielgtaylor/huma/v2"

// Container собирает цепочку interceptors для очередного обработчика.
type Container struct {
	mws huma.Middlewares
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Add(mws ...func(huma.Context, func(huma.Context))) *Container {
	c.mws = append(c.mws, mws...)
	return c
}

// GetAllAndClear returns the collected chain and starts a new one.
func (c *Container) GetAllAndClear() huma.Middlewares {
	out := c.mws
	c.mws = nil
	return out
}
