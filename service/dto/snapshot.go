// Package dto holds the serializable views of a generated maze.
package dto

// CellView is the read-only state of one cell.
type CellView struct {
	Row       int  `json:"row" yaml:"row"`
	Col       int  `json:"col" yaml:"col"`
	Visited   bool `json:"visited" yaml:"visited"`
	NorthWall bool `json:"north_wall" yaml:"north_wall"`
	EastWall  bool `json:"east_wall" yaml:"east_wall"`
	SouthWall bool `json:"south_wall" yaml:"south_wall"`
	WestWall  bool `json:"west_wall" yaml:"west_wall"`
}

// Position is a row and column pair.
type Position struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// Snapshot is the state of one generation run.
type Snapshot struct {
	ID         string     `json:"id" yaml:"id"`
	Rows       int        `json:"rows" yaml:"rows"`
	Columns    int        `json:"columns" yaml:"columns"`
	Seed       int64      `json:"seed" yaml:"seed"`
	Status     string     `json:"status" yaml:"status"`
	Current    Position   `json:"current" yaml:"current"`
	Steps      int        `json:"steps" yaml:"steps"`
	Advances   int        `json:"advances" yaml:"advances"`
	Backtracks int        `json:"backtracks" yaml:"backtracks"`
	Perfect    bool       `json:"perfect" yaml:"perfect"`
	Cells      []CellView `json:"cells" yaml:"cells"` // Row-major
}
