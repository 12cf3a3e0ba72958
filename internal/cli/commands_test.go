package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func subcommandNames(cmd *cobra.Command) map[string]bool {
	names := make(map[string]bool)
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	return names
}

func TestGarmentCmd_Subcommands(t *testing.T) {
	names := subcommandNames(GarmentCmd())
	for _, want := range []string{"add", "show", "list", "names", "colors", "rate", "clean", "dirty", "edit", "delete", "next-id"} {
		if !names[want] {
			t.Errorf("expected garment subcommand %q", want)
		}
	}
}

func TestSetCmd_Subcommands(t *testing.T) {
	names := subcommandNames(SetCmd())
	for _, want := range []string{"add", "show", "list", "dates", "rate", "edit", "next-id"} {
		if !names[want] {
			t.Errorf("expected set subcommand %q", want)
		}
	}
}

func TestPhotoCmd_Subcommands(t *testing.T) {
	names := subcommandNames(PhotoCmd())
	if !names["status"] || !names["watch"] {
		t.Errorf("expected status and watch, got %v", names)
	}
}

func TestGarmentAdd_RequiresKind(t *testing.T) {
	flag := garmentAddCmd.Flags().Lookup("kind")
	if flag == nil {
		t.Fatal("expected --kind flag")
	}
	if _, ok := flag.Annotations[cobra.BashCompOneRequiredFlag]; !ok {
		t.Error("expected --kind to be required")
	}
}

func TestSetAdd_DefaultsToUnrated(t *testing.T) {
	rate, err := setAddCmd.Flags().GetString("rate")
	if err != nil {
		t.Fatal(err)
	}
	if rate != "?" {
		t.Errorf("expected default rate ?, got %q", rate)
	}
}

func TestGarmentList_CleanAndDirtyConflict(t *testing.T) {
	cmd := GarmentCmd()
	cmd.SetArgs([]string{"list", "--clean", "--dirty"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "mutually exclusive") {
		t.Errorf("expected mutually exclusive error, got %v", err)
	}
}

func TestGarmentDelete_RejectsNonNumericID(t *testing.T) {
	cmd := GarmentCmd()
	cmd.SetArgs([]string{"delete", "blue"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "invalid garment id") {
		t.Errorf("expected invalid id error, got %v", err)
	}
}
