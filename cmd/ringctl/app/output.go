package app

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/pquerna/ffjson/ffjson"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"ringqueue/pkg/klog"
	"ringqueue/pkg/monitor"
	"ringqueue/pkg/script"
)

const queueName = "ringctl"

func ResultHeader() string {
	return "STEP\tOP\tVALUE\tOK\tERROR\tSTATE\n"
}

func resultRow(r script.Result) string {
	errMsg := r.Err
	if errMsg == "" {
		errMsg = "-"
	}
	return fmt.Sprintf("%d\t%s\t%s\t%t\t%s\t%s\n", r.Step, r.Op, r.Value, r.OK, errMsg, r.State)
}

func (o *options) runScript(cmd *cobra.Command, s *script.Script) error {
	format := o.v.GetString("output")
	if format != OutputTable && format != OutputJson {
		return errors.Wrapf(ErrUnknownOutput, "%q", format)
	}

	rq, err := script.NewQueue(s)
	if err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	if o.metrics {
		reg.MustRegister(monitor.NewCollector(queueName, rq))
	}

	klog.Infof("running %d ops, capacity %d, growth %s/%d", len(s.Ops), s.Capacity, s.Growth.Mode, s.Growth.Amount)
	results, execErr := script.Execute(rq, s.Ops)

	out := cmd.OutOrStdout()
	if format == OutputJson {
		err = writeJson(out, results)
	} else {
		err = writeTable(out, results)
	}
	if err != nil {
		return err
	}

	if o.metrics {
		if err := writeMetrics(out, reg); err != nil {
			return err
		}
	}
	return execErr
}

func writeTable(w io.Writer, results []script.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprint(tw, ResultHeader())
	for _, r := range results {
		_, _ = fmt.Fprint(tw, resultRow(r))
	}
	return tw.Flush()
}

func writeJson(w io.Writer, results []script.Result) error {
	buf, err := ffjson.Marshal(results)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(buf))
	return err
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	samples, err := monitor.Samples(g)
	if err != nil {
		return err
	}
	for _, s := range samples {
		keys := make([]string, 0, len(s.Labels))
		for k := range s.Labels {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, fmt.Sprintf("%s=%q", k, s.Labels[k]))
		}
		if _, err := fmt.Fprintf(w, "%s{%s} %g\n", s.Name, strings.Join(pairs, ","), s.Value); err != nil {
			return err
		}
	}
	return nil
}
