package application

type CreateApplicationInput struct {
	ScholarshipID uint   `json:"scholarship_id" binding:"required"`
	PaymentID     uint   `json:"payment_id" binding:"required"`
	Phone         string `json:"phone" binding:"required,max=32"`
	Photo         string `json:"photo" binding:"omitempty,url"`
	Address       string `json:"address" binding:"required,max=512"`
	Gender        string `json:"gender" binding:"required,oneof=Male Female Other"`
	Degree        string `json:"degree" binding:"required,degree"`
	SSCResult     string `json:"ssc_result" binding:"required,max=16"`
	HSCResult     string `json:"hsc_result" binding:"required,max=16"`
	StudyGap      string `json:"study_gap" binding:"omitempty,oneof=Yes No"`
}

type UpdateApplicationInput struct {
	Phone     *string `json:"phone" binding:"omitempty,max=32"`
	Photo     *string `json:"photo" binding:"omitempty,url"`
	Address   *string `json:"address" binding:"omitempty,max=512"`
	Gender    *string `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	Degree    *string `json:"degree" binding:"omitempty,degree"`
	SSCResult *string `json:"ssc_result" binding:"omitempty,max=16"`
	HSCResult *string `json:"hsc_result" binding:"omitempty,max=16"`
	StudyGap  *string `json:"study_gap" binding:"omitempty,oneof=Yes No"`
}

type UpdateStatusInput struct {
	Status   string  `json:"status" binding:"required"`
	Feedback *string `json:"feedback"`
}

type FeedbackInput struct {
	Feedback string `json:"feedback" binding:"required"`
}

type ListFilter struct {
	Status        *Status
	ScholarshipID *uint
	UserID        *uint
	// Sort is "applied" (default, newest first) or "deadline".
	Sort string
}

// Stats counts applications per status.
type Stats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	Processing int64 `json:"processing"`
	Completed  int64 `json:"completed"`
	Rejected   int64 `json:"rejected"`
}

func (s *Stats) Add(status Status, n int64) {
	switch status {
	case StatusPending:
		s.Pending += n
	case StatusProcessing:
		s.Processing += n
	case StatusCompleted:
		s.Completed += n
	case StatusRejected:
		s.Rejected += n
	}
	s.Total += n
}
