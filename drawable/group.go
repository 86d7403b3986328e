package drawable

// Group layers its children at the same position and forwards every
// lifecycle call to them in order.
type Group struct {
	Children []Drawable
}

func NewGroup(children ...Drawable) *Group {
	return &Group{Children: children}
}

func (g *Group) Register() {
	for _, c := range g.Children {
		c.Register()
	}
}

func (g *Group) Load() {
	for _, c := range g.Children {
		c.Load()
	}
}

func (g *Group) Step() {
	for _, c := range g.Children {
		c.Step()
	}
}

func (g *Group) Update(dt float64) {
	for _, c := range g.Children {
		c.Update(dt)
	}
}

// State is the least settled state among the children. An empty group is
// Final.
func (g *Group) State() State {
	if len(g.Children) == 0 {
		return Final
	}
	s := Hidden
	for _, c := range g.Children {
		s = min(s, c.State())
	}
	return s
}

// Draw stops at the first child that fails.
func (g *Group) Draw(t Target, pos Position, s Settings) error {
	for _, c := range g.Children {
		if err := c.Draw(t, pos, s); err != nil {
			return err
		}
	}
	return nil
}
