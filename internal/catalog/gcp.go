package catalog

// gcpDescriptor covers the Google Cloud wrapper: Compute Engine instance
// lifecycle and Cloud Storage bucket/object operations.
func gcpDescriptor() Descriptor {
	return Descriptor{
		Name:        "GCPModule",
		Description: "Manage Google Cloud Platform resources: compute instances, storage buckets, and objects",
		Keywords:    []string{"gcp", "google", "cloud", "compute", "instance", "storage", "bucket", "zone", "region"},
		Methods: []Method{
			{
				Name:        "compute_instance_create",
				Description: "Create a Compute Engine VM instance with specified configuration",
				Parameters: map[string]string{
					"name":         "Instance name (must be unique in zone)",
					"zone":         "GCP zone (optional, uses default zone, e.g. 'us-central1-a')",
					"machine_type": "Machine type (optional, default 'e2-medium')",
					"disk_size_gb": "Boot disk size in GB (optional, default 10)",
				},
				Returns: "Operation name and instance name",
				Examples: []Example{
					{Text: "create compute instance {{name}} in zone {{zone}}", Code: "compute_instance_create(name='{{name}}', zone='{{zone}}')"},
					{Text: "create compute instance {{name}} with machine type {{machine_type}} and disk size {{disk_size_gb}}", Code: "compute_instance_create(name='{{name}}', machine_type='{{machine_type}}', disk_size_gb={{disk_size_gb}})"},
				},
			},
			{
				Name:        "compute_instance_list",
				Description: "List all Compute Engine instances in a zone",
				Parameters: map[string]string{
					"zone": "GCP zone (optional, uses default zone)",
				},
				Returns: "Instance details: name, machine type, status, IPs",
				Examples: []Example{
					{Text: "list compute instances", Code: "compute_instance_list()"},
					{Text: "list compute instances in zone {{zone}}", Code: "compute_instance_list(zone='{{zone}}')"},
				},
			},
			{
				Name:        "compute_instance_start",
				Description: "Start a stopped Compute Engine instance",
				Parameters: map[string]string{
					"name": "Instance name to start",
					"zone": "GCP zone (optional, uses default zone)",
				},
				Returns: "Operation name",
				Examples: []Example{
					{Text: "start compute instance {{name}}", Code: "compute_instance_start(name='{{name}}')"},
					{Text: "start compute instance {{name}} in zone {{zone}}", Code: "compute_instance_start(name='{{name}}', zone='{{zone}}')"},
				},
			},
			{
				Name:        "compute_instance_stop",
				Description: "Stop a running Compute Engine instance",
				Parameters: map[string]string{
					"name": "Instance name to stop",
					"zone": "GCP zone (optional, uses default zone)",
				},
				Returns: "Operation name",
				Examples: []Example{
					{Text: "stop compute instance {{name}}", Code: "compute_instance_stop(name='{{name}}')"},
				},
			},
			{
				Name:        "storage_bucket_create",
				Description: "Create a Cloud Storage bucket in a location",
				Parameters: map[string]string{
					"name":     "Bucket name (globally unique)",
					"location": "Bucket location (optional, e.g. 'us-central1')",
				},
				Returns: "Bucket name and location",
				Examples: []Example{
					{Text: "create storage bucket {{name}}", Code: "storage_bucket_create(name='{{name}}')"},
					{Text: "create storage bucket {{name}} in location {{location}}", Code: "storage_bucket_create(name='{{name}}', location='{{location}}')"},
				},
			},
			{
				Name:        "storage_upload_file",
				Description: "Upload a local file to a Cloud Storage bucket",
				Parameters: map[string]string{
					"file":   "Local file path to upload",
					"bucket": "Destination bucket name",
				},
				Returns: "Object name and upload status",
				Examples: []Example{
					{Text: "upload file {{file}} to bucket {{bucket}}", Code: "storage_upload_file(file='{{file}}', bucket='{{bucket}}')"},
				},
			},
		},
	}
}
