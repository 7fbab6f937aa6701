package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldPartitionId = "partition_id"

	FieldBatchID     = "batch_id"
	FieldOrderID     = "order_id"
	FieldLocation    = "location"
	FieldEventType   = "event_type"
	FieldGrouping    = "grouping"
	FieldGranularity = "granularity"
	FieldBucketStart = "bucket_start"
	FieldGroupKey    = "group_key"
	FieldWatermark   = "watermark"
	FieldClient      = "client"
)
