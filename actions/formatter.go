package actions

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

var dataEscaper = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")
var propertyEscaper = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A", ":", "%3A", ",", "%2C")

// CommandFormatter renders log entries as workflow commands understood by the runner.
// Info entries are written as plain lines.
type CommandFormatter struct{}

// Format implements logrus.Formatter
func (f *CommandFormatter) Format(entry *log.Entry) ([]byte, error) {
	msg := entry.Message
	if len(entry.Data) > 0 {
		msg += " " + formatFields(entry.Data)
	}

	var b bytes.Buffer
	switch entry.Level {
	case log.DebugLevel:
		b.WriteString(command("debug", nil, msg))
	case log.WarnLevel:
		b.WriteString(command("warning", nil, msg))
	case log.ErrorLevel, log.FatalLevel, log.PanicLevel:
		b.WriteString(command("error", nil, msg))
	default:
		b.WriteString(msg)
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func formatFields(data log.Fields) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = fmt.Sprintf("%s=%v", k, data[k])
	}
	return strings.Join(pairs, " ")
}

// command renders ::name key=value,...::message
func command(name string, properties map[string]string, msg string) string {
	s := "::" + name
	if len(properties) > 0 {
		keys := make([]string, 0, len(properties))
		for k := range properties {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = k + "=" + propertyEscaper.Replace(properties[k])
		}
		s += " " + strings.Join(pairs, ",")
	}
	return s + "::" + dataEscaper.Replace(msg)
}
