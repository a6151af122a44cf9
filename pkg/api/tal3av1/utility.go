package tal3av1

type HealthRequest struct{}

type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

type NowRequest struct{}

type NowResponse struct {
	UnixNanos int64 `json:"unix_nanos"`
}

type WhoAmIRequest struct{}

type WhoAmIResponse struct {
	Principal string `json:"principal"`
}

// CompactIndexRequest names one event index list, e.g. {"sport", "Football"}
// or {"events", "all"}.
type CompactIndexRequest struct {
	Index string `json:"index"`
	Value string `json:"value"`
}

type CompactIndexResponse struct {
	Dropped int32 `json:"dropped"`
}
