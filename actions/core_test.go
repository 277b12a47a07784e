package actions

import (
	"bytes"
	"io/ioutil"
	"os"
	"regexp"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/redbadger/create-deployment/constants"
)

func newTestCore(v *viper.Viper) (*Core, *bytes.Buffer) {
	var out bytes.Buffer
	return NewCore(v, log.New(), &out), &out
}

func TestGetInput(t *testing.T) {
	v := viper.New()
	v.Set(constants.InputToken, "  footoken \n")
	core, _ := newTestCore(v)

	got, err := core.GetInput(constants.InputToken, true)
	if err != nil || got != "footoken" {
		t.Errorf("GetInput(token) = %q, %v", got, err)
	}

	got, err = core.GetInput(constants.InputPayload, false)
	if err != nil || got != "" {
		t.Errorf("GetInput(payload) = %q, %v", got, err)
	}

	_, err = core.GetInput(constants.InputEnvironment, true)
	if err == nil || err.Error() != "Input required and not supplied: environment" {
		t.Errorf("GetInput(environment) error = %v", err)
	}
}

func TestGetInputFromEnvironment(t *testing.T) {
	os.Setenv("INPUT_REQUIREDCONTEXTS", " build,build-migrations ")
	defer os.Unsetenv("INPUT_REQUIREDCONTEXTS")

	v := viper.New()
	ConfigureInputs(v)
	core, _ := newTestCore(v)

	got, err := core.GetInput(constants.InputRequiredContexts, false)
	if err != nil || got != "build,build-migrations" {
		t.Errorf("GetInput(requiredContexts) = %q, %v", got, err)
	}
}

func TestSetOutputFile(t *testing.T) {
	f, err := ioutil.TempFile("", "github-output")
	if err != nil {
		t.Fatalf("creating output file: %v", err)
	}
	f.Close()
	defer os.Remove(f.Name())

	v := viper.New()
	v.Set(constants.OutputEnvVar, f.Name())
	core, out := newTestCore(v)

	core.SetOutput(constants.OutputDeploymentID, "1234567890")

	contents, err := ioutil.ReadFile(f.Name())
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	re := regexp.MustCompile(`^deployment_id<<(ghadelimiter_[0-9a-f-]{36})\n1234567890\n(ghadelimiter_[0-9a-f-]{36})\n$`)
	m := re.FindStringSubmatch(string(contents))
	if m == nil || m[1] != m[2] {
		t.Errorf("output file = %q", contents)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected log output %q", out.String())
	}
}

func TestSetOutputFallback(t *testing.T) {
	tests := []struct {
		name       string
		outputFile string
		wantLog    *regexp.Regexp
	}{
		{"no output file", "", regexp.MustCompile(`^::set-output name=deployment_id::1234567890\n$`)},
		{"missing output file", "/nonexistent/github-output", regexp.MustCompile(`^::warning::writing output file.*\n::set-output name=deployment_id::1234567890\n$`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(constants.OutputEnvVar, tt.outputFile)
			core, out := newTestCore(v)

			core.SetOutput(constants.OutputDeploymentID, "1234567890")
			if !tt.wantLog.MatchString(out.String()) {
				t.Errorf("log = %q", out.String())
			}
		})
	}
}

func TestSetFailed(t *testing.T) {
	core, out := newTestCore(viper.New())
	if core.Failed() {
		t.Fatal("Failed() before SetFailed")
	}
	core.Info("Deployment created: 1")
	core.SetFailed("Kaboom!")
	if !core.Failed() {
		t.Error("Failed() = false after SetFailed")
	}
	if want := "Deployment created: 1\n::error::Kaboom!\n"; out.String() != want {
		t.Errorf("log = %q, want %q", out.String(), want)
	}
}

func TestDebugEnabled(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want bool
	}{
		{"runner debug", constants.RunnerDebugEnvVar, "1", true},
		{"step debug", constants.StepDebugEnvVar, "TRUE", true},
		{"disabled", constants.RunnerDebugEnvVar, "0", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.val)
			if got := DebugEnabled(v); got != tt.want {
				t.Errorf("DebugEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}
