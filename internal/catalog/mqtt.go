package catalog

// mqttDescriptor covers the messaging wrapper: broker connection and
// publish/subscribe operations.
func mqttDescriptor() Descriptor {
	return Descriptor{
		Name:        "MQTTModule",
		Description: "Publish and subscribe to MQTT topics on a message broker",
		Keywords:    []string{"mqtt", "broker", "publish", "subscribe", "topic", "message", "payload"},
		Methods: []Method{
			{
				Name:        "connect",
				Description: "Establish connection to MQTT broker with optional broker and port override",
				Parameters: map[string]string{
					"broker": "Broker hostname or IP address",
					"port":   "Broker port, typically 1883 (optional)",
				},
				Returns: "Nothing on success",
				Examples: []Example{
					{Text: "connect broker {{broker}}", Code: "connect(broker='{{broker}}')"},
					{Text: "connect broker {{broker}} port {{port}}", Code: "connect(broker='{{broker}}', port={{port}})"},
				},
			},
			{
				Name:        "publish",
				Description: "Publish a message payload to an MQTT topic with configurable QoS",
				Parameters: map[string]string{
					"topic":   "Topic to publish to (e.g. 'sensors/temperature')",
					"payload": "Message payload",
					"qos":     "Quality of service: 0, 1, or 2 (optional)",
				},
				Returns: "Message ID",
				Examples: []Example{
					{Text: "publish topic {{topic}} payload {{payload}}", Code: "publish(topic='{{topic}}', payload='{{payload}}')"},
					{Text: "publish topic {{topic}} payload {{payload}} qos {{qos}}", Code: "publish(topic='{{topic}}', payload='{{payload}}', qos={{qos}})"},
				},
			},
			{
				Name:        "subscribe",
				Description: "Subscribe to an MQTT topic, wildcards + and # supported",
				Parameters: map[string]string{
					"topic": "Topic filter to subscribe to (e.g. 'sensors/+/status')",
					"qos":   "Quality of service: 0, 1, or 2 (optional)",
				},
				Returns: "Nothing on success",
				Examples: []Example{
					{Text: "subscribe topic {{topic}}", Code: "subscribe(topic='{{topic}}')"},
					{Text: "subscribe topic {{topic}} qos {{qos}}", Code: "subscribe(topic='{{topic}}', qos={{qos}})"},
				},
			},
		},
	}
}
