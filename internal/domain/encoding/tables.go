package encoding

// Entry is one key of a categorical code table.
type Entry struct {
	Key  string
	Code int
}

// CodeTable maps a categorical value to the integer code the model was trained
// with. Keys are matched exactly, trailing whitespace included.
type CodeTable struct {
	name    string
	entries []Entry
	index   map[string]int
}

func newCodeTable(name string, entries ...Entry) CodeTable {
	idx := make(map[string]int, len(entries))
	for _, e := range entries {
		idx[e.Key] = e.Code
	}
	return CodeTable{name: name, entries: entries, index: idx}
}

func (t CodeTable) Name() string {
	return t.name
}

func (t CodeTable) Code(key string) (int, bool) {
	c, ok := t.index[key]
	return c, ok
}

func (t CodeTable) Contains(key string) bool {
	_, ok := t.index[key]
	return ok
}

func (t CodeTable) Len() int {
	return len(t.entries)
}

func (t CodeTable) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

func (t CodeTable) Keys() []string {
	out := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e.Key)
	}
	return out
}

// Any change to these tables invalidates the trained model.
var (
	Currency = newCodeTable("currency",
		Entry{"EGP", 0},
		Entry{"USD", 1},
		Entry{"AED", 2},
		Entry{"SAR", 3},
		Entry{"EUR", 4},
	)

	WorkHour = newCodeTable("workhour",
		Entry{"Full Time", 1},
		Entry{"Part Time", 0},
	)

	WorkType = newCodeTable("worktype",
		Entry{"Remote", 0},
		Entry{"On Site", 1},
		Entry{"Hybrid", 2},
	)

	CompanyCountry = newCodeTable("companyCountry",
		Entry{"Egyption and site in egypt", 0},
		Entry{"Not Egyption but site in egypt", 1},
		Entry{"Else", 2},
		Entry{"Not Egyption and site out of egypt", 3},
		Entry{"Egyptian and site out of Egypt", 4},
	)

	// Some keys carry a trailing space and "Kuwait" exists twice. Both are
	// training-time values and must stay as they are.
	City = newCodeTable("city",
		Entry{"Cairo", 0},
		Entry{"Multi Site", 1},
		Entry{"Dubai", 2},
		Entry{"Australia", 3},
		Entry{"Alexandria", 4},
		Entry{"Kuwait", 5},
		Entry{"Riyadh", 6},
		Entry{"London", 7},
		Entry{"Giza", 8},
		Entry{"Jordan ", 9},
		Entry{"California", 10},
		Entry{"Mansoura", 11},
		Entry{"Manama", 12},
		Entry{"Canada", 13},
		Entry{"Beni Suef", 14},
		Entry{"Berlin", 15},
		Entry{"Lebnanon", 16},
		Entry{"Minya", 17},
		Entry{"Tanta", 18},
		Entry{"Else", 19},
		Entry{"6th of October", 20},
		Entry{"Shiekh zayed", 21},
		Entry{"USA", 22},
		Entry{"Jeddah", 23},
		Entry{"Georgia", 24},
		Entry{"Suez", 25},
		Entry{"Poland", 26},
		Entry{"Abu Dhabi", 27},
		Entry{"Marsa Alam", 28},
		Entry{"New York", 29},
		Entry{"Amman", 30},
		Entry{"Obour City ", 31},
		Entry{"New Administrative capital ", 32},
		Entry{"France", 33},
		Entry{"Zagazig", 34},
		Entry{"Vancouver", 35},
		Entry{"Nasr City", 36},
		Entry{"Warsaw", 37},
		Entry{"Munich", 38},
		Entry{"Oman", 39},
		Entry{"10th of Ramadan", 40},
		Entry{"Denmark", 41},
		Entry{"Montreal", 42},
		Entry{"Kuwait ", 43},
		Entry{"rabat", 44},
		Entry{"Zurich", 45},
		Entry{"Shorouk", 46},
		Entry{"Baghdad", 47},
		Entry{"Magdeburg", 48},
	)
)

// All returns the tables in validation order.
func All() []CodeTable {
	return []CodeTable{Currency, WorkHour, WorkType, CompanyCountry, City}
}
