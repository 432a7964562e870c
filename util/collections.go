package util

// Collection names in the document store.
const (
	AdminCollection     = "admins"
	CampaignCollection  = "campaigns"
	ComplaintCollection = "complaints"
	NoticeCollection    = "notices"
	CounterCollection   = "counters"
)

// ComplaintSequence is the counters document that backs ticket numbering.
const ComplaintSequence = "complaintId"
