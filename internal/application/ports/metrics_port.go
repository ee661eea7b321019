package ports

// Recorder contadores de negocio. La implementación real es Prometheus.
type Recorder interface {
	ResidentRegistered(source string) // "self" | "admin"
	RoomAllocated()
	RentStatusChanged(paid bool)
	ComplaintFiled()
	ComplaintResolved()
	NoticePosted()
}

// NopRecorder descarta las métricas.
type NopRecorder struct{}

func (NopRecorder) ResidentRegistered(string) {}
func (NopRecorder) RoomAllocated()            {}
func (NopRecorder) RentStatusChanged(bool)    {}
func (NopRecorder) ComplaintFiled()           {}
func (NopRecorder) ComplaintResolved()        {}
func (NopRecorder) NoticePosted()             {}
