package models

import (
	"fmt"
	"strings"
)

// Rank is an account's permission level. Ranks are ordered: a higher value
// grants everything a lower one does.
type Rank int16

const (
	RankNone Rank = iota
	RankMember
	RankModerator
	RankAdmin
	RankOwner
)

var rankNames = [...]string{
	RankNone:      "None",
	RankMember:    "Member",
	RankModerator: "Moderator",
	RankAdmin:     "Admin",
	RankOwner:     "Owner",
}

// String returns the rank name, e.g. "Member".
func (r Rank) String() string {
	if r < 0 || int(r) >= len(rankNames) {
		return fmt.Sprintf("Rank(%d)", int16(r))
	}
	return rankNames[r]
}

// ParseRank maps a rank name to its value. Matching ignores case.
func ParseRank(s string) (Rank, error) {
	for i, name := range rankNames {
		if strings.EqualFold(name, s) {
			return Rank(i), nil
		}
	}
	return RankNone, fmt.Errorf("unknown rank %q", s)
}

// AtLeast reports whether r grants the permissions of other.
func (r Rank) AtLeast(other Rank) bool {
	return r >= other
}

func (r Rank) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Rank) UnmarshalText(text []byte) error {
	parsed, err := ParseRank(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
