package entity

// Sale post categories. Labels are the Icelandic slugs the clients send.
const (
	CategoryFatnad   = "fatnad"   // clothing
	CategoryHusgogn  = "husgogn"  // furniture
	CategoryRaftaeki = "raftaeki" // electronics
	CategoryMatvorur = "matvorur" // groceries
	CategoryAnnad    = "annad"    // everything else
)

func ValidCategory(c string) bool {
	switch c {
	case CategoryFatnad, CategoryHusgogn, CategoryRaftaeki, CategoryMatvorur, CategoryAnnad:
		return true
	}
	return false
}
