package pkx

// TSV is the trainer shiny value. Game Boy records have no PID and return 0.
func (e *Entity) TSV() uint16 {
	if !e.lay.pid.present() {
		return 0
	}
	return (e.TID() ^ e.SID()) >> e.lay.shinyShift
}

// PSV is the personality shiny value.
func (e *Entity) PSV() uint16 {
	if !e.lay.pid.present() {
		return 0
	}
	pid := e.PID()
	return uint16(pid>>16^pid&0xFFFF) >> e.lay.shinyShift
}

// Shiny reports whether the entity is shiny.
func (e *Entity) Shiny() bool {
	if e.lay.shinyOf != nil {
		return e.lay.shinyOf(e)
	}
	return e.TSV() == e.PSV()
}

// SetShiny rerolls the PID through the configured generator until the shiny
// state matches v. Species, gender, nature and ability slot are preserved.
func (e *Entity) SetShiny(v bool) {
	if e.lay.setShiny != nil {
		e.lay.setShiny(e, v)
		return
	}
	if e.Shiny() == v {
		return
	}
	e.rerollPID(v, e.Nature())
}

func (e *Entity) rerollPID(shiny bool, nature Nature) {
	pid := e.pids.Generate(PIDRequest{
		Generation:    e.lay.gen,
		Species:       e.Species(),
		Form:          e.Form(),
		Gender:        e.Gender(),
		GenderRatio:   e.personal.GenderRatio(e.FormSpecies()),
		Version:       e.Version(),
		Nature:        nature,
		AbilityNumber: e.AbilityNumber(),
		WantShiny:     shiny,
		TSV:           e.TSV(),
		CurrentPID:    e.PID(),
	})
	e.SetPID(pid)
}
