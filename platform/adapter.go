package platform

import "fmt"

// Detail selects how much of the host report get_system_info produces.
type Detail string

const (
	DetailBasic Detail = "basic"
	DetailFull  Detail = "full"
)

// Action selects between listing everything and reporting a single item in
// the scheduled-task and service queries.
type Action string

const (
	ActionQuery  Action = "query"
	ActionStatus Action = "status"
)

// Adapter renders logical operations into Invocations for one fixed
// platform. Every method is deterministic and does no I/O: identical
// inputs always produce an identical Invocation.
type Adapter struct {
	platform Platform
}

func NewAdapter(p Platform) *Adapter {
	return &Adapter{platform: p}
}

func (a *Adapter) Platform() Platform {
	return a.platform
}

func (a *Adapter) invocation(name string, args ...string) Invocation {
	return Invocation{Platform: a.platform, Name: name, Args: args}
}

// Command renders a free-form command line. On Windows it runs under the
// native command interpreter. Elsewhere the line is rewritten on a best
// effort basis (see Rewrite) and handed to sh.
func (a *Adapter) Command(raw string) Invocation {
	if a.platform == Windows {
		return a.invocation("cmd", "/c", raw)
	}
	return a.invocation("sh", "-c", Rewrite(raw))
}

// Script renders a PowerShell script body as an inline instruction block.
// There is no substitute interpreter elsewhere, so every other platform is
// unsupported and the script is never attempted.
func (a *Adapter) Script(body string) (Invocation, error) {
	if a.platform != Windows {
		return Invocation{}, ErrUnsupported
	}
	return a.invocation("powershell", "-NoProfile", "-NonInteractive", "-Command", body), nil
}

// ProcessList renders the running-process query. The filter narrows by
// image name natively on Windows; on other platforms the full table is
// produced and the caller filters the text.
func (a *Adapter) ProcessList(filter string) Invocation {
	if a.platform == Windows {
		if filter != "" {
			return a.invocation("tasklist", "/FI", fmt.Sprintf("IMAGENAME eq %s", filter))
		}
		return a.invocation("tasklist")
	}
	return a.invocation("ps", "aux")
}

const basicSystemInfoQuery = `systeminfo | findstr /B /C:"OS Name" /C:"OS Version" /C:"System Type" /C:"Total Physical Memory"`

// SystemInfo renders the host report query.
func (a *Adapter) SystemInfo(detail Detail) Invocation {
	if a.platform == Windows {
		if detail == DetailFull {
			return a.invocation("systeminfo")
		}
		return a.invocation("cmd", "/c", basicSystemInfoQuery)
	}

	if detail == DetailFull {
		return a.invocation("sh", "-c", "uname -a && lscpu")
	}
	return a.invocation("uname", "-a")
}

// NetworkInfo renders the adapter report query. The interface name selects
// a single configuration natively on Windows; elsewhere the full report is
// produced and the caller filters the text.
func (a *Adapter) NetworkInfo(iface string) Invocation {
	if a.platform == Windows {
		if iface != "" {
			return a.invocation("netsh", "interface", "ip", "show", "config", "name="+iface)
		}
		return a.invocation("ipconfig", "/all")
	}
	return a.invocation("sh", "-c", "ip addr 2>/dev/null || ifconfig")
}

// ScheduledTasks renders the task-scheduler query. Windows only.
func (a *Adapter) ScheduledTasks(action Action, taskName string) (Invocation, error) {
	if a.platform != Windows {
		return Invocation{}, ErrUnsupported
	}

	if action == ActionStatus {
		return a.invocation("schtasks", "/query", "/tn", taskName, "/v", "/fo", "LIST"), nil
	}
	return a.invocation("schtasks", "/query", "/fo", "LIST"), nil
}

// ServiceInfo renders the service-manager query. Windows only.
func (a *Adapter) ServiceInfo(action Action, serviceName string) (Invocation, error) {
	if a.platform != Windows {
		return Invocation{}, ErrUnsupported
	}

	if action == ActionStatus {
		return a.invocation("sc", "query", serviceName), nil
	}
	return a.invocation("sc", "query", "state=", "all"), nil
}
