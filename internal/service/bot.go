package service

import (
	"math/rand/v2"
)

// BotService picks the computer's cell. It is memoryless: every available
// cell has the same chance.
type BotService interface {
	ChooseCell(available []int) int
}

type botService struct {
	rnd *rand.Rand
}

// NewBotService creates a uniform random bot. A zero seed gives a different
// sequence on every run; any other seed makes the sequence reproducible.
func NewBotService(seed uint64) BotService {
	if seed == 0 {
		return &botService{rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))} //nolint: gosec // it's ok
	}

	return &botService{rnd: rand.New(rand.NewPCG(seed, seed))} //nolint: gosec // it's ok
}

// ChooseCell returns one of available. available must not be empty.
func (that *botService) ChooseCell(available []int) int {
	return available[that.rnd.IntN(len(available))]
}
