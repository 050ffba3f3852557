package config

const (
	DefaultTimeZone = "America/Argentina/Buenos_Aires"

	// Daily ingest audit summary, 06:00 local
	DefaultAuditSchedule = "0 6 * * *"

	GatewayAddr = ":8081"
	PagosAddr   = ":7143"
	ReportsAddr = ":4143"

	MaxUploadBytes = 32 << 20
	MaxSheetRows   = 65536

	DateLayout = "2006-01-02"
)

// DateLayouts are the accepted spreadsheet date formats, tried in order.
var DateLayouts = []string{"2006-01-02", "02-01-2006", "02/01/2006", "2006/01/02", "2 Jan 2006"}
