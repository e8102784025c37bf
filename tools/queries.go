package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ryanreadbooks/cmdgate/component/tool"
	"github.com/ryanreadbooks/cmdgate/pkg/xstring"
	"github.com/ryanreadbooks/cmdgate/platform"
)

type ListRunningProcessesInput struct {
	Filter string `json:"filter,omitempty" jsonschema:"description=Only report processes whose table row contains this text"`
}

// ListRunningProcesses reports the host process table. On Windows the
// filter narrows the query itself; elsewhere it filters the output lines.
func ListRunningProcesses(env *Env) tool.Invoker {
	return tool.NewInvoker(tool.Info{
		Name:        "list_running_processes",
		Description: "List the processes running on this host, optionally narrowed by a name filter.",
	}, func(ctx context.Context, input *ListRunningProcessesInput) (string, error) {
		inv := env.Adapter.ProcessList(input.Filter)

		out, err := runQuery(ctx, env, inv)
		if err != nil {
			return "", err
		}

		if input.Filter != "" && inv.Platform != platform.Windows {
			out = xstring.FilterLines(out, input.Filter)
		}

		return out, nil
	})
}

type GetSystemInfoInput struct {
	Detail string `json:"detail,omitempty" jsonschema:"description=Level of detail of the report,enum=basic,enum=full,default=basic"`
}

func (in *GetSystemInfoInput) Validate() error {
	switch platform.Detail(in.Detail) {
	case "", platform.DetailBasic, platform.DetailFull:
		return nil
	}
	return fmt.Errorf("detail must be %q or %q", platform.DetailBasic, platform.DetailFull)
}

func GetSystemInfo(env *Env) tool.Invoker {
	return tool.NewInvoker(tool.Info{
		Name:        "get_system_info",
		Description: "Report OS, hardware and memory facts about this host.",
	}, func(ctx context.Context, input *GetSystemInfoInput) (string, error) {
		detail := platform.Detail(input.Detail)
		if detail == "" {
			detail = platform.DetailBasic
		}

		return runQuery(ctx, env, env.Adapter.SystemInfo(detail))
	})
}

type GetNetworkInfoInput struct {
	NetworkInterface string `json:"networkInterface,omitempty" jsonschema:"description=Report a single network interface by name"`
}

// GetNetworkInfo reports network adapter configuration. On Windows a named
// interface selects a single configuration natively; elsewhere the full
// report is filtered by line.
func GetNetworkInfo(env *Env) tool.Invoker {
	return tool.NewInvoker(tool.Info{
		Name:        "get_network_info",
		Description: "Report the network adapters of this host, optionally narrowed to one interface.",
	}, func(ctx context.Context, input *GetNetworkInfoInput) (string, error) {
		inv := env.Adapter.NetworkInfo(input.NetworkInterface)

		out, err := runQuery(ctx, env, inv)
		if err != nil {
			return "", err
		}

		if input.NetworkInterface != "" && inv.Platform != platform.Windows {
			out = xstring.FilterLines(out, input.NetworkInterface)
		}

		return out, nil
	})
}

type GetScheduledTasksInput struct {
	Action   string `json:"action,omitempty"   jsonschema:"description=query lists all tasks; status reports one task,enum=query,enum=status,default=query"`
	TaskName string `json:"taskName,omitempty" jsonschema:"description=The task to report when action is status"`
}

func (in *GetScheduledTasksInput) Validate() error {
	if err := validateAction(in.Action); err != nil {
		return err
	}
	if in.Action == string(platform.ActionStatus) && strings.TrimSpace(in.TaskName) == "" {
		return errors.New(`missing required parameter "taskName" when action is "status"`)
	}
	return nil
}

func GetScheduledTasks(env *Env) tool.Invoker {
	return tool.NewInvoker(tool.Info{
		Name:        "get_scheduled_tasks",
		Description: "Query the Windows task scheduler, either the whole task list or one task's status.",
	}, func(ctx context.Context, input *GetScheduledTasksInput) (string, error) {
		inv, err := env.Adapter.ScheduledTasks(actionOf(input.Action), input.TaskName)
		if err != nil {
			return "", tool.TagError(tool.TagPlatformUnsupported,
				fmt.Errorf("scheduled task queries are %w", err))
		}

		return runQuery(ctx, env, inv)
	})
}

type GetServiceInfoInput struct {
	Action      string `json:"action,omitempty"      jsonschema:"description=query lists all services; status reports one service,enum=query,enum=status,default=query"`
	ServiceName string `json:"serviceName,omitempty" jsonschema:"description=The service to report when action is status"`
}

func (in *GetServiceInfoInput) Validate() error {
	if err := validateAction(in.Action); err != nil {
		return err
	}
	if in.Action == string(platform.ActionStatus) && strings.TrimSpace(in.ServiceName) == "" {
		return errors.New(`missing required parameter "serviceName" when action is "status"`)
	}
	return nil
}

func GetServiceInfo(env *Env) tool.Invoker {
	return tool.NewInvoker(tool.Info{
		Name:        "get_service_info",
		Description: "Query the Windows service manager, either the whole service list or one service's status.",
	}, func(ctx context.Context, input *GetServiceInfoInput) (string, error) {
		inv, err := env.Adapter.ServiceInfo(actionOf(input.Action), input.ServiceName)
		if err != nil {
			return "", tool.TagError(tool.TagPlatformUnsupported,
				fmt.Errorf("service queries are %w", err))
		}

		return runQuery(ctx, env, inv)
	})
}

func validateAction(action string) error {
	switch platform.Action(action) {
	case "", platform.ActionQuery, platform.ActionStatus:
		return nil
	}
	return fmt.Errorf("action must be %q or %q", platform.ActionQuery, platform.ActionStatus)
}

func actionOf(action string) platform.Action {
	if platform.Action(action) == platform.ActionStatus {
		return platform.ActionStatus
	}
	return platform.ActionQuery
}
