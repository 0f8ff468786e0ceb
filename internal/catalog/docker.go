package catalog

// dockerDescriptor covers the container wrapper: run, lifecycle, and log
// operations against a local Docker daemon.
func dockerDescriptor() Descriptor {
	return Descriptor{
		Name:        "DockerModule",
		Description: "Manage Docker containers and images: run, start, stop, remove, and inspect logs",
		Keywords:    []string{"docker", "container", "image", "run", "logs"},
		Methods: []Method{
			{
				Name:        "container_run",
				Description: "Run a container from an image with optional name",
				Parameters: map[string]string{
					"image": "Image name and tag (e.g. 'nginx:latest')",
					"name":  "Container name (optional, generated if omitted)",
				},
				Returns: "Container ID",
				Examples: []Example{
					{Text: "run container from image {{image}}", Code: "container_run(image='{{image}}')"},
					{Text: "run container from image {{image}} with name {{name}}", Code: "container_run(image='{{image}}', name='{{name}}')"},
				},
			},
			{
				Name:        "container_start",
				Description: "Start a stopped container",
				Parameters: map[string]string{
					"container_id": "Container ID or name",
				},
				Returns: "True on success",
				Examples: []Example{
					{Text: "start container {{container_id}}", Code: "container_start(container_id='{{container_id}}')"},
				},
			},
			{
				Name:        "container_stop",
				Description: "Stop a running container gracefully with timeout",
				Parameters: map[string]string{
					"container_id": "Container ID or name",
					"timeout":      "Seconds to wait before force kill (default 10)",
				},
				Returns: "True on success",
				Examples: []Example{
					{Text: "stop container {{container_id}}", Code: "container_stop(container_id='{{container_id}}')"},
					{Text: "stop container {{container_id}} with timeout {{timeout}} seconds", Code: "container_stop(container_id='{{container_id}}', timeout={{timeout}})"},
				},
			},
			{
				Name:        "container_logs",
				Description: "Fetch recent log output from a container",
				Parameters: map[string]string{
					"container_id": "Container ID or name",
					"tail":         "Number of trailing lines (optional, default 100)",
				},
				Returns: "Log text",
				Examples: []Example{
					{Text: "show logs for container {{container_id}}", Code: "container_logs(container_id='{{container_id}}')"},
					{Text: "show last {{tail}} log lines for container {{container_id}}", Code: "container_logs(container_id='{{container_id}}', tail={{tail}})"},
				},
			},
		},
	}
}
