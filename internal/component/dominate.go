// internal/component/dominate.go
package component

// Dominated marks an enemy whose AI has been taken over: it chases and
// attacks other enemies until the duration runs out.
type Dominated struct {
	Duration     Timer
	AttackTimer  Timer
	AttackDamage float64
	AttackRange  float64
}

func NewDominated(durationSecs, attackIntervalSecs, attackDamage, attackRange float64) *Dominated {
	return &Dominated{
		Duration:     NewTimer(durationSecs),
		AttackTimer:  NewRepeatingTimer(attackIntervalSecs),
		AttackDamage: attackDamage,
		AttackRange:  attackRange,
	}
}

func (d *Dominated) Expired() bool {
	return d.Duration.Finished()
}
