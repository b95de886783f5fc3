package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mongoshift/mongoshift/internal/adapters/inbound/cli"
)

const fixtureDir = "../../../../testdata/spring-petclinic-mini"

// tempProject builds a minimal Java project whose advisor endpoint is a
// closed local port, so planning always falls back to canned defaults
// without touching the network.
func tempProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	entity := `import javax.persistence.Entity;
import javax.persistence.Id;

@Entity
public class Owner {

    @Id
    private Integer id;

    private String name;
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Owner.java"), []byte(entity), 0644))

	cfg := "llm:\n  base_url: http://127.0.0.1:9\n  timeout_seconds: 1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".mongoshift.yaml"), []byte(cfg), 0644))

	return dir
}

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "mongoshift")
}

func TestAnalyzeCommand_JSON(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"analyze", fixtureDir, "--json"})
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, `"entities"`)
	assert.Contains(t, out, `"Owner"`)
	assert.Contains(t, out, `"OwnerRepository"`)
	assert.Contains(t, out, `"relationships"`)
}

func TestAnalyzeCommand_DefaultTUI(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"analyze", fixtureDir})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "mongoshift")
	assert.Contains(t, buf.String(), "Owner")
}

func TestPlanCommand_FallsBackToDefaults(t *testing.T) {
	dir := tempProject(t)

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"plan", dir, "--json"})
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, `"advice_status": "failed"`)
	assert.Contains(t, out, `"migration_steps"`)
	assert.Contains(t, out, "Set up MongoDB environment")
}

func TestPlanCommand_History(t *testing.T) {
	dir := tempProject(t)

	run := cli.NewRootCmdForTest()
	run.SetOut(new(bytes.Buffer))
	run.SetArgs([]string{"plan", dir, "--json"})
	require.NoError(t, run.Execute())

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"plan", dir, "--history"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "Run History")
}

func TestImpactCommand_JSON(t *testing.T) {
	dir := tempProject(t)

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"impact", dir, "--json"})
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, `"impacted_files"`)
	assert.Contains(t, out, `"estimated_effort_hours"`)
}

func TestExportCommand_WritesArtifacts(t *testing.T) {
	dir := tempProject(t)
	outDir := filepath.Join(t.TempDir(), "plan")

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"export", dir, "--out", outDir})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "Migration plan exported to")
	for _, name := range []string{
		"migration_plan_summary.md",
		"mongodb_schema.json",
		"code_transformations.md",
		"migration_steps.md",
		"file_impact_analysis.md",
	} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, "expected %s to exist", name)
	}
}

func TestValidateCommand_RequiresURI(t *testing.T) {
	dir := tempProject(t)

	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"validate", dir})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no MongoDB URI configured")
}
