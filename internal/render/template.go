package render

// tmplTimeline is the whole report document: inline styles, inline script,
// no external assets, so the output can be opened from disk or served as a
// single static object.
const tmplTimeline = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body{margin:0;padding:16px;background:#0d1117;color:#c9d1d9;font:13px/1.5 -apple-system,"Segoe UI",Helvetica,Arial,sans-serif}
h1{font-size:18px;margin:0 0 4px}
.meta{font-size:11px;color:#8b949e;margin-bottom:12px}
.meta b{color:#58a6ff;font-weight:600}
.legend{display:flex;gap:14px;margin-bottom:10px;font-size:11px;color:#8b949e}
.legend span::before{content:"";display:inline-block;width:10px;height:10px;border-radius:2px;margin-right:5px;vertical-align:-1px;background:var(--c)}
.empty{border:1px dashed #30363d;border-radius:6px;padding:32px;text-align:center;color:#8b949e}
#chart{border:1px solid #30363d;border-radius:6px;background:#161b22;overflow:hidden}
#axis{position:relative;height:22px;border-bottom:1px solid #30363d;margin-left:220px}
.tick{position:absolute;top:0;height:100%;border-left:1px solid #21262d;padding-left:4px;font-size:10px;color:#8b949e;white-space:nowrap}
.row{display:flex;height:26px;border-bottom:1px solid #1c2128;align-items:center}
.row:hover{background:#1c2128}
.lab{width:220px;flex-shrink:0;padding:0 8px;overflow:hidden;text-overflow:ellipsis;white-space:nowrap;font-size:11px}
.lab .rid{color:#8b949e}
.lane{position:relative;flex:1;height:100%}
.bar{position:absolute;top:6px;height:14px;border-radius:3px;min-width:3px}
.bar.open{background-image:repeating-linear-gradient(45deg,rgba(255,255,255,.25) 0 4px,transparent 4px 8px);border:1px dashed rgba(255,255,255,.5)}
#tip{position:fixed;display:none;z-index:10;background:#1c2128;border:1px solid #30363d;border-radius:4px;padding:8px 10px;font-size:11px;line-height:1.7;pointer-events:none;max-width:320px;box-shadow:0 4px 12px rgba(0,0,0,.5)}
#tip b{color:#58a6ff}
.footer{margin-top:10px;font-size:10px;color:#484f58}
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="meta">window <b>{{.WindowStart}}</b> &rarr; <b>{{.WindowEnd}}</b> &middot; <b>{{.Count}}</b> workflow run{{if ne .Count 1}}s{{end}}</div>
<div class="legend">
<span style="--c:#10b981">Succeeded</span>
<span style="--c:#ef4444">Failed</span>
<span style="--c:#3b82f6">Running</span>
<span style="--c:#f59e0b">Pending</span>
<span style="--c:#6b7280">Unknown</span>
</div>
{{if eq .Count 0}}
<div class="empty">No workflow runs matched the selected filters.</div>
{{else}}
<div id="chart"><div id="axis"></div><div id="rows"></div></div>
<div id="tip"></div>
{{end}}
<div class="footer">generated {{.GeneratedAt}}</div>
<script>
(function(){
var DATA = {{.JSONData}};
if (!DATA.length) return;

var PHASE_CLR = {
  Succeeded:'#10b981', Failed:'#ef4444', Running:'#3b82f6',
  Pending:'#f59e0b', Unknown:'#6b7280'
};

var minT = Infinity, maxT = -Infinity;
DATA.forEach(function(r){
  r.startMs = Date.parse(r.start);
  r.endMs = r.end ? Date.parse(r.end) : null;
  if (r.startMs < minT) minT = r.startMs;
  if ((r.endMs || r.startMs) > maxT) maxT = r.endMs || r.startMs;
});
if (maxT <= minT) maxT = minT + 60000;
// Open-ended bars extend to the right edge of the observed span.
var span = maxT - minT;

function pct(ms){ return ((ms - minT) / span * 100).toFixed(3) + '%'; }
function fmtDur(s){
  if (s == null) return 'ongoing';
  if (s < 60) return s.toFixed(0) + 's';
  if (s < 3600) return (s/60).toFixed(1) + 'm';
  return (s/3600).toFixed(2) + 'h';
}

var axis = document.getElementById('axis');
var ticks = 6;
for (var i = 0; i <= ticks; i++) {
  var t = minT + span * i / ticks;
  var el = document.createElement('div');
  el.className = 'tick';
  el.style.left = (i / ticks * 100) + '%';
  el.textContent = new Date(t).toISOString().substring(11, 19);
  axis.appendChild(el);
}

var tip = document.getElementById('tip');
function showTip(ev, r){
  var lines = [
    '<b>' + r.run + '</b>',
    'phase: ' + r.phase,
    'start: ' + r.start,
    'end: ' + (r.end || 'ongoing'),
    'duration: ' + fmtDur(r.end ? r.seconds : null)
  ];
  if (r.owner) lines.push('owner: ' + r.owner);
  if (r.sa) lines.push('service account: ' + r.sa);
  tip.innerHTML = lines.join('<br>');
  tip.style.display = 'block';
  moveTip(ev);
}
function moveTip(ev){
  var x = ev.clientX + 14, y = ev.clientY + 14;
  if (x + tip.offsetWidth > window.innerWidth) x = ev.clientX - tip.offsetWidth - 8;
  tip.style.left = x + 'px';
  tip.style.top = y + 'px';
}
function hideTip(){ tip.style.display = 'none'; }

var rows = document.getElementById('rows');
DATA.forEach(function(r){
  var row = document.createElement('div');
  row.className = 'row';

  var lab = document.createElement('div');
  lab.className = 'lab';
  var suffix = r.run.length > r.name.length ? r.run.substring(r.name.length) : '';
  lab.innerHTML = r.name + '<span class="rid">' + suffix + '</span>';
  lab.title = r.run;
  row.appendChild(lab);

  var lane = document.createElement('div');
  lane.className = 'lane';
  var bar = document.createElement('div');
  bar.className = r.endMs ? 'bar' : 'bar open';
  bar.style.left = pct(r.startMs);
  bar.style.width = 'calc(' + pct(r.endMs || maxT) + ' - ' + pct(r.startMs) + ')';
  bar.style.background = PHASE_CLR[r.phase] || PHASE_CLR.Unknown;
  bar.addEventListener('mouseenter', function(ev){ showTip(ev, r); });
  bar.addEventListener('mousemove', moveTip);
  bar.addEventListener('mouseleave', hideTip);
  lane.appendChild(bar);
  row.appendChild(lane);

  rows.appendChild(row);
});
})();
</script>
</body>
</html>
`
