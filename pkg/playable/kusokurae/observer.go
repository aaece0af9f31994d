package kusokurae

// Observer receives game events. Calls happen synchronously inside Start and Play.
type Observer interface {
	// StatusChanged is called right before the game's status becomes status.
	// g.Status() still returns the old status.
	StatusChanged(g *Game, status Status)

	// TrickConcluded is called after the trick's winner has been credited
	TrickConcluded(g *Game, result TrickResult)
}

// ObserverFuncs adapts plain functions to an Observer. nil functions are skipped.
type ObserverFuncs struct {
	OnStatusChanged  func(g *Game, status Status)
	OnTrickConcluded func(g *Game, result TrickResult)
}

// StatusChanged calls OnStatusChanged
func (o ObserverFuncs) StatusChanged(g *Game, status Status) {
	if o.OnStatusChanged != nil {
		o.OnStatusChanged(g, status)
	}
}

// TrickConcluded calls OnTrickConcluded
func (o ObserverFuncs) TrickConcluded(g *Game, result TrickResult) {
	if o.OnTrickConcluded != nil {
		o.OnTrickConcluded(g, result)
	}
}
