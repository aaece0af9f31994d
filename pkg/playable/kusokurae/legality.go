package kusokurae

// setPlayableFlags marks which cards the player may play now.
// A leader may not lead a zero, unless zeros are all they have left.
func (p *Player) setPlayableFlags(isLeader bool) {
	p.busted = BustedNone

	unplayed := 0
	playable := 0
	last := -1
	for i := range p.hand {
		card := &p.hand[i]
		if card.IsPlayed() {
			card.Playable = false
			continue
		}

		unplayed++
		card.Playable = !isLeader || card.Rank != 0
		if card.Playable {
			playable++
			last = i
		}
	}

	if unplayed == 0 {
		return
	}

	if playable == 0 {
		for i := range p.hand {
			if !p.hand[i].IsPlayed() {
				p.hand[i].Playable = true
			}
		}

		p.busted = BustedForced
		return
	}

	if playable == 1 && p.hand[last].Rank == 0 {
		p.busted = BustedLoneZero
	}
}
