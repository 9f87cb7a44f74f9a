package messages

const (
	CmdStatus = "!bot"

	MsgStatusOwner  = "✅ Moderation bot active\nOwner: %s\nStatus: online — you are exempt from moderation"
	MsgStatusAdmin  = "✅ Moderation bot active\nOwner: %s\nStatus: monitoring this group (you are a group admin)"
	MsgStatusMember = "✅ Moderation bot active\nOwner: %s\nStatus: monitoring this group"

	MsgReasonLink      = "link detected"
	MsgReasonPhone     = "phone number detected"
	MsgReasonAPK       = "apk attachment"
	MsgReasonArchive   = "zip archive attachment"
	MsgReasonAudio     = "audio attachment"
	MsgReasonBusiness  = "business/catalog post"
	MsgReasonKeyword   = "prohibited keyword"
	MsgReasonButtons   = "interactive buttons payload"
	MsgReasonContact   = "contact card"
	MsgReasonDuplicate = "repeated message"
)
