package statuses

const (
	StatusActive   = "active"
	StatusFinished = "finished"
	StatusDrawn    = "drawn"
	StatusResigned = "resigned"
)
