package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

// MaxMediaSize caps uploaded media attachments at 25 MiB.
const MaxMediaSize = 25 << 20
