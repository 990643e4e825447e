package domain

// Item is a reward that can be won from a case. Items are templates: winning
// one copies it into the user's inventory, it is never removed from the case.
type Item struct {
	ID     string `json:"item_id"`
	Name   string `json:"name"`
	Image  string `json:"image"`
	Rarity string `json:"rarity"`
}

// Case is a purchasable bundle with a price and an ordered pool of possible
// reward items. Invariant: Items is non-empty for any case reaching the
// selector; the catalog layer enforces this on write.
type Case struct {
	ID    string `json:"case_id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Image string `json:"image"`
	Items []Item `json:"items"`
}

// CaseSummary is the catalog listing view of a case, without its item pool.
type CaseSummary struct {
	ID    string `json:"case_id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Image string `json:"image"`
}

// OpenResult holds the outcome of one open-case transaction. WonItems is in
// draw order and its length equals the requested quantity.
type OpenResult struct {
	WonItems []Item `json:"items"`
}
