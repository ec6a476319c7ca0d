package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShowProject(t *testing.T) {
	initTest(t)
	createAcalRepository(t)

	stdoutBuf, _ := interceptCmdOutput(t)
	execCheck(t, newShowCmd(), exitCodeSuccess, "user-experience")

	out := stdoutBuf.String()
	assert.Contains(t, out, "acal:user-experience")
	assert.Contains(t, out, "gwt_client_event")
	assert.Contains(t, out, "org.example.acal.Acal")
	assert.Contains(t, out, "acal:shared:jar")
	assert.Contains(t, out, "js_exports=false")
	assert.Contains(t, out, "compilerMaxHeapSize=1024")
}

func TestShowProjectByFullName(t *testing.T) {
	initTest(t)
	createAcalRepository(t)

	stdoutBuf, _ := interceptCmdOutput(t)
	execCheck(t, newShowCmd(), exitCodeSuccess, "acal:server")

	out := stdoutBuf.String()
	assert.Contains(t, out, "ee_web_xml")
	assert.Contains(t, out, "target/assets as .")
	assert.NotContains(t, out, "jws_server")
}

func TestShowUnknownProjectFails(t *testing.T) {
	initTest(t)
	createAcalRepository(t)

	_, stderrBuf := interceptCmdOutput(t)
	execCheck(t, newShowCmd(), exitCodeNotExist, "client")

	assert.Contains(t, stderrBuf.String(), `project "client" does not exist`)
}
