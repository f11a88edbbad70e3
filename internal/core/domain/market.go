package domain

import (
	"strings"
	"time"
)

// MaxMarketNameLength bounds a market name in characters.
const MaxMarketNameLength = 100

// SystemMarketCreator is the creator recorded on the built-in markets.
const SystemMarketCreator = "system"

// builtinMarketNames are the outlets every deployment starts with.
var builtinMarketNames = []string{
	"محلاوي الحي العاشر",
	"محلاوي التجمع الخامس",
	"محلاوي مارت فيل",
	"جمال سلامه الشيراتون",
	"جمال سلامه ميدان الجامع",
	"علوش ماركت",
	"محلاوي الطيران",
}

// Market is an outlet field staff record sales against. The catalogue is shared: any
// account may add to it, nobody edits or removes entries.
type Market struct {
	MarketID  string    `json:"marketID"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// BuiltinMarkets returns the seeded catalogue. Their ids are their names.
func BuiltinMarkets() []Market {
	out := make([]Market, len(builtinMarketNames))
	for i, name := range builtinMarketNames {
		out[i] = Market{MarketID: name, Name: name, CreatedBy: SystemMarketCreator}
	}
	return out
}

// NormaliseMarketName trims the name and collapses inner runs of whitespace.
func NormaliseMarketName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// SameMarketName compares names the way duplicates are detected.
func SameMarketName(a, b string) bool {
	return strings.EqualFold(NormaliseMarketName(a), NormaliseMarketName(b))
}
