package kafka

const (
	// TopicAssetJobs carries submitted derived-asset jobs, keyed by content id.
	TopicAssetJobs = "ugc.asset.jobs"

	// ConsumerGroupAssetJobs is the worker consumer group.
	ConsumerGroupAssetJobs = "ugc-asset-worker"
)
