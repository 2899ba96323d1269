package components

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownReward is returned for an unrecognized cache reward tag
var ErrUnknownReward = errors.New("unknown cache reward")

// RewardKind is the pickup a destroyed cache releases
type RewardKind uint8

const (
	RewardNone RewardKind = iota
	RewardHP
	RewardLazer
	RewardDouble
	RewardCoins
)

// Reward is a cache payout; Count is used by RewardCoins only
type Reward struct {
	Kind  RewardKind
	Count int
}

// ParseReward decodes a cache tag: "hp", "lazer", "2x" or "coinN"
func ParseReward(tag string) (Reward, error) {
	switch tag {
	case "hp":
		return Reward{Kind: RewardHP}, nil
	case "lazer":
		return Reward{Kind: RewardLazer}, nil
	case "2x":
		return Reward{Kind: RewardDouble}, nil
	}
	if n, ok := strings.CutPrefix(tag, "coin"); ok {
		count, err := strconv.Atoi(n)
		if err != nil || count < 0 {
			return Reward{}, fmt.Errorf("%w: %q", ErrUnknownReward, tag)
		}
		return Reward{Kind: RewardCoins, Count: count}, nil
	}
	return Reward{}, fmt.Errorf("%w: %q", ErrUnknownReward, tag)
}

func (r Reward) String() string {
	switch r.Kind {
	case RewardHP:
		return "hp"
	case RewardLazer:
		return "lazer"
	case RewardDouble:
		return "2x"
	case RewardCoins:
		return "coin" + strconv.Itoa(r.Count)
	}
	return ""
}
