package util

import (
	"fmt"
	"pokerrooms-server/internal/rng"
)

var adjectives = []string{
	"LUCKY", "ROYAL", "WILD", "GOLDEN", "MYSTIC", "BRAVE", "SWIFT", "EPIC", "MEGA", "SUPER",
	"CRAZY", "MAGIC", "BRIGHT", "SHINY", "FANCY", "TURBO", "COSMIC", "ELECTRIC", "FIRE", "ICE",
	"SHADOW", "DIAMOND", "SILVER", "PURPLE", "CRIMSON", "JADE", "NEON", "LASER", "QUANTUM", "PIXEL",
}

var nouns = []string{
	"CATS", "DOGS", "LIONS", "TIGERS", "BEARS", "WOLVES", "EAGLES", "SHARKS", "DRAGONS", "WIZARDS",
	"KNIGHTS", "PIRATES", "ROBOTS", "NINJAS", "HEROES", "LEGENDS", "STARS", "DIAMONDS", "ROCKETS", "BOMBS",
	"LASERS", "SWORDS", "SHIELDS", "CROWNS", "TOWERS", "CASTLES", "TEMPLES", "BRIDGES", "GARDENS", "BOXES",
}

// GetRandomRoomName returns a name like LUCKYDRAGONS42 by combining an adjective, a noun and a number below 100
func GetRandomRoomName(random rng.Generator) string {
	return fmt.Sprintf("%s%s%d", adjectives[random.Intn(len(adjectives))], nouns[random.Intn(len(nouns))], random.Intn(100))
}
