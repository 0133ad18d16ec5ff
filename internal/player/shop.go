package player

// BuyHeartRefill restores hearts to max for a gem cost. Rejected with no
// mutation when already full or unaffordable. Premium players are always
// full, so the purchase is rejected for them too.
func (p *Profile) BuyHeartRefill(cost, max int) error {
	if max <= 0 {
		max = DefaultMaxHearts
	}
	if p.IsPremium || p.Hearts >= max {
		return ErrHeartsFull
	}
	if err := p.SpendGems(cost); err != nil {
		return err
	}
	p.Hearts = max
	p.LastHeartLost = nil
	return nil
}

// BuySkipToken exchanges gems for one skip token.
func (p *Profile) BuySkipToken(cost int) error {
	if err := p.SpendGems(cost); err != nil {
		return err
	}
	p.SkipTokens++
	return nil
}
