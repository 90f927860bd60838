package render

// PageCSS styles the dashboard: tabs, the grid view and the card view.
const PageCSS = `
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", "PingFang SC", "Microsoft YaHei", sans-serif; margin: 0 auto; padding: 1rem; max-width: 1400px; color: #1a1a2e; }
.page-header h1 { font-size: 1.75rem; margin: 0 0 .25rem; }
.caption, .tab-caption { color: #6c757d; font-size: .85rem; }
.tab-radio { display: none; }
.tab-label { display: inline-block; padding: .5rem 1rem; cursor: pointer; border-bottom: 2px solid transparent; }
.tab-radio:checked + .tab-label { border-bottom-color: #ff4b4b; color: #ff4b4b; }
.panel { display: none; padding-top: 1rem; }
#tab-weekly:checked ~ #panel-weekly,
#tab-library:checked ~ #panel-library,
#tab-body:checked ~ #panel-body,
#tab-notes:checked ~ #panel-notes { display: block; }
.filter { display: flex; flex-wrap: wrap; gap: .5rem; align-items: center; margin-bottom: 1rem; }
.filter-label { font-weight: 600; }
.chip { border: 1px solid #dee2e6; border-radius: 999px; padding: .125rem .625rem; font-size: .8rem; }
.no-data { color: #6c757d; background: #e8f4fd; padding: .75rem 1rem; border-radius: 6px; }
.error-banner { background: #fdecea; color: #b71c1c; padding: .75rem 1rem; border-radius: 6px; }
.error-hint { color: #0d47a1; background: #e8f4fd; padding: .5rem .75rem; border-radius: 4px; }

.fit-table { width: 100%; border-collapse: collapse; font-size: 13px; line-height: 1.5; }
.fit-table th { background-color: #1a1a2e; color: #ffffff; padding: 10px 12px; text-align: center; font-weight: bold; font-size: 13px; border: 1px solid #333; position: sticky; top: 0; z-index: 1; }
.fit-table td { padding: 8px 10px; border: 1px solid #e0e0e0; vertical-align: middle; }
.fit-table .merged-cell { font-weight: 700; font-size: 13px; vertical-align: middle; text-align: center; border-right: 2px solid #ccc; }
.fit-table tr:hover td { background-color: #f0f4ff; }
.fit-table tr:nth-child(even) td { background-color: #fafbfc; }

.notes h3 { margin: 1.25rem 0 .5rem; }
.notes hr { border: 0; border-top: 1px solid #e0e0e0; margin: 1rem 0; }

.day-card { margin-bottom: 1rem; }
.day-header { font-weight: 700; padding: .5rem .75rem; border-radius: 6px; margin-bottom: .5rem; }
.phase-header { font-size: .8rem; font-weight: 700; color: #546e7a; margin: .75rem 0 .25rem; letter-spacing: .05em; }
.ex-card { border: 1px solid #e0e0e0; border-left: 4px solid #90a4ae; border-radius: 6px; padding: .5rem .75rem; margin-bottom: .5rem; background: #fff; }
.ex-head { display: flex; gap: .5rem; align-items: baseline; }
.ex-no { font-weight: 700; color: #90a4ae; }
.ex-name { font-weight: 700; flex: 1; }
.ex-type { font-size: .8rem; }
.ex-meta { display: flex; gap: .5rem; margin: .25rem 0; font-size: .85rem; }
.ex-rpe { padding: 0 .375rem; border-radius: 4px; }
.ex-field { font-size: .8rem; color: #455a64; }
.ex-label { color: #90a4ae; margin-right: .375rem; }
.forbid-banner { background: #ffebee; color: #b71c1c; border: 1px solid #ef9a9a; border-radius: 6px; padding: .5rem .75rem; margin-bottom: .5rem; }
.forbid-title { font-weight: 700; }
.forbid-note { font-size: .8rem; }
.warmup summary { cursor: pointer; font-weight: 700; padding: .5rem 0; }
.cat-header { font-weight: 700; border-left: 4px solid #757575; padding: .25rem .5rem; margin: 1rem 0 .5rem; }
.cat-card { border: 1px solid #e0e0e0; border-radius: 6px; padding: .5rem .75rem; margin-bottom: .5rem; }
.cat-title { font-weight: 600; }
.cat-detail { font-size: .85rem; color: #455a64; }

@media (max-width: 768px) {
  body { padding: .5rem; }
  .tab-label { padding: .5rem .5rem; font-size: .85rem; }
}
`
