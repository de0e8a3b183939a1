package health

import (
	"encoding/json"
	"fmt"
	"html"
	"sort"
	"strings"
)

// RenderDashboardHTML returns the status page served at GET /.
func RenderDashboardHTML(health CollectResult) string {
	b, _ := json.Marshal(health)
	// Escape for embedding in a JS template literal: \ ` $
	jsonStr := strings.NewReplacer("\\", "\\\\", "`", "\\`", "$", "\\$").Replace(string(b))

	headline := "All Systems Operational"
	if health.Status != "ok" {
		headline = "System Issues Detected"
	}

	names := make([]string, 0, len(health.Dependencies))
	for name := range health.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)
	var deps strings.Builder
	for _, name := range names {
		dep := health.Dependencies[name]
		class := "err"
		if dep.Status == "connected" || dep.Status == "reachable" || dep.Status == "in-memory" {
			class = "ok"
		}
		fmt.Fprintf(&deps, `<div class="row"><span>%s</span><span class="pill %s" data-dep="%s">%s</span></div>`,
			html.EscapeString(name), class, html.EscapeString(name), html.EscapeString(dep.Status))
	}

	lastReq := "-"
	if m, ok := health.Traffic.LastRequest.(map[string]interface{}); ok {
		lastReq = fmt.Sprintf("%v %v", m["method"], m["path"])
	}

	return `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Nadlan · API Status</title>
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <style>
    :root { --blue: #1d4ed8; --dark: #0f172a; --bg: #f8fafc; --muted: #64748b; }
    body { background: var(--bg); color: var(--dark); font-family: system-ui, sans-serif; margin: 0; display: flex; justify-content: center; padding: 40px 20px; }
    .container { width: 100%; max-width: 960px; }
    h1 { font-size: 44px; font-weight: 900; letter-spacing: -2px; margin: 0 0 8px; }
    h1.issue { color: #b91c1c; }
    .subtext { color: var(--muted); font-weight: 700; margin-bottom: 28px; }
    .card { background: white; border-radius: 24px; box-shadow: 0 20px 60px -20px rgba(15, 23, 42, 0.15); overflow: hidden; }
    .grid { display: grid; grid-template-columns: repeat(3, 1fr); }
    .col { padding: 32px; border-right: 1px solid #f1f5f9; }
    .col:last-child { border-right: none; }
    .label { text-transform: uppercase; font-size: 11px; font-weight: 900; letter-spacing: 2px; color: #94a3b8; margin-bottom: 18px; }
    .big { font-size: 36px; font-weight: 900; margin-bottom: 10px; }
    .row { display: flex; justify-content: space-between; padding: 7px 0; border-bottom: 1px solid #f8fafc; font-size: 14px; font-weight: 700; }
    .pill { padding: 3px 10px; border-radius: 8px; font-size: 11px; font-weight: 900; }
    .ok { background: rgba(29, 78, 216, 0.08); color: var(--blue); }
    .err { background: rgba(239, 68, 68, 0.08); color: #ef4444; }
    .footer { padding: 16px 32px; font-family: monospace; font-size: 13px; border-top: 1px solid #f1f5f9; display: flex; justify-content: space-between; }
    a { color: var(--blue); font-weight: 800; }
    @media (max-width: 800px) { .grid { grid-template-columns: 1fr; } .col { border-right: none; } }
  </style>
</head>
<body>
  <div class="container">
    <h1 id="headline" class="` + html.EscapeString(health.Status) + `">` + headline + `</h1>
    <p class="subtext">Nadlan marketplace API · <a href="/health/json">/health/json</a> · <a href="/health/errors">/health/errors</a></p>
    <div class="card">
      <div class="grid">
        <div class="col">
          <div class="label">Traffic</div>
          <div class="big" id="total-req">` + fmt.Sprint(health.Traffic.TotalRequests) + `</div>
          <div class="row"><span>Successful</span><span id="success-count">` + fmt.Sprint(health.Traffic.SuccessCount) + `</span></div>
          <div class="row"><span>Failed</span><span id="failed-count">` + fmt.Sprint(health.Traffic.FailedCount) + `</span></div>
          <div class="row"><span>Success Rate</span><span id="success-rate">` + health.Traffic.SuccessRate + `%</span></div>
          <div class="row"><span>Avg Latency</span><span id="avg-time">` + fmt.Sprint(health.Traffic.AvgResponseTime) + `ms</span></div>
        </div>
        <div class="col">
          <div class="label">Runtime</div>
          <div class="big" id="uptime">` + fmt.Sprint(health.Runtime.UptimeSeconds) + `s</div>
          <div class="row"><span>Heap Used</span><span id="mem-heap">` + fmt.Sprint(health.Runtime.Memory.HeapUsed) + ` MB</span></div>
          <div class="row"><span>Goroutines</span><span id="goroutines">` + fmt.Sprint(health.Runtime.Goroutines) + `</span></div>
          <div class="row"><span>Platform</span><span>` + html.EscapeString(health.Runtime.Platform) + `</span></div>
        </div>
        <div class="col">
          <div class="label">Dependencies</div>
          ` + deps.String() + `
        </div>
      </div>
      <div class="footer"><span>LAST INBOUND</span><span id="last-req">` + html.EscapeString(lastReq) + `</span></div>
    </div>
  </div>
  <script>
    let data = JSON.parse(` + "`" + jsonStr + "`" + `);
    const render = (d) => {
      document.getElementById('total-req').innerText = d.traffic.totalRequests;
      document.getElementById('success-count').innerText = d.traffic.successCount;
      document.getElementById('failed-count').innerText = d.traffic.failedCount;
      document.getElementById('success-rate').innerText = d.traffic.successRate + '%';
      document.getElementById('avg-time').innerText = d.traffic.avgResponseTime + 'ms';
      document.getElementById('uptime').innerText = d.runtime.uptimeSeconds + 's';
      document.getElementById('mem-heap').innerText = d.runtime.memory.heapUsed + ' MB';
      document.getElementById('goroutines').innerText = d.runtime.goroutines;
      if (d.traffic.lastRequest) document.getElementById('last-req').innerText = d.traffic.lastRequest.method + ' ' + d.traffic.lastRequest.path;
      document.querySelectorAll('[data-dep]').forEach((el) => { const dep = d.dependencies[el.dataset.dep]; if (dep) el.innerText = dep.status + (dep.pingMs != null ? ' · ' + dep.pingMs + ' ms' : ''); });
      const hl = document.getElementById('headline');
      hl.className = d.status;
      hl.innerText = d.status === 'ok' ? 'All Systems Operational' : 'System Issues Detected';
    };
    render(data);
    let left = 3;
    const timer = setInterval(async () => { if (--left < 0) return clearInterval(timer); try { render(await (await fetch('/health/json')).json()); } catch (e) {} }, 10000);
  </script>
</body>
</html>`
}
