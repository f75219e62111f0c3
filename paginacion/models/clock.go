package models

// Clock es el reloj global del simulador. Vive en [0, MaxStamp] y avanza una vez por acceso.
type Clock struct {
	t int
}

func (c *Clock) Now() int {
	return c.t
}

// Advance avanza el reloj un tick.
func (c *Clock) Advance() {
	c.t = (c.t + 1) & MaxStamp
}

// Reset vuelve el reloj a cero al comenzar una nueva época.
func (c *Clock) Reset() {
	c.t = 0
}

// Set posiciona el reloj; sólo se usa para armar escenarios.
func (c *Clock) Set(t int) {
	c.t = t & MaxStamp
}
