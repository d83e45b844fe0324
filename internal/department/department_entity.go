package department

// Department is derived from the fixed catalogue and the directory; it is
// never stored on its own.
type Department struct {
	Name      string
	Headcount int
	Active    int
	OnLeave   int
}
