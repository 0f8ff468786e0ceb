package llm

import "testing"

func TestNewGeneratorValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing api key", Config{Model: "gpt-4o-mini"}},
		{"missing model", Config{APIKey: "sk-test"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGenerator(tt.cfg); err == nil {
				t.Error("NewGenerator() expected error, got nil")
			}
		})
	}
}

func TestCleanReply(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{
			name:  "plain call",
			reply: "create_instance(name='web')",
			want:  "create_instance(name='web')",
		},
		{
			name:  "python fence",
			reply: "```python\ncreate_instance(name='web')\n```",
			want:  "create_instance(name='web')",
		},
		{
			name:  "bare fence",
			reply: "```\nstart_instance(name='db')\n```",
			want:  "start_instance(name='db')",
		},
		{
			name:  "surrounding whitespace",
			reply: "  \n  stop_instance(name='db')  \n",
			want:  "stop_instance(name='db')",
		},
		{
			name:  "first line only",
			reply: "publish(topic='a')\npublish(topic='b')",
			want:  "publish(topic='a')",
		},
		{
			name:  "empty reply",
			reply: "   \n  ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanReply(tt.reply); got != tt.want {
				t.Errorf("CleanReply(%q) = %q, want %q", tt.reply, got, tt.want)
			}
		})
	}
}
