// internal/web/templates.go
package web

import "html/template"

var pages = template.Must(template.New("pages").Funcs(template.FuncMap{
	"derefInt": func(p *int) int {
		if p == nil {
			return 0
		}
		return *p
	},
}).Parse(pagesHTML))

const pagesHTML = `
{{define "head"}}<!doctype html>
<html>
<head>
<title>{{.Title}} - Campaign Catalog</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
nav a { margin-right: 1em; }
.error { color: #b00; }
label { display: block; margin: 4px 0; }
</style>
</head>
<body>
<nav>
<a href="/brands">Brands</a>
<a href="/campaigns">Campaigns</a>
<a href="/programs">Programs</a>
<a href="/placements">Placements</a>
</nav>
<h1>{{.Title}}</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{end}}

{{define "foot"}}</body>
</html>{{end}}

{{define "error"}}{{template "head" .}}
<p class="error">{{.Message}}</p>
{{template "foot" .}}{{end}}

{{define "brand_list"}}{{template "head" .}}
<form method="get" action="/brands">
<input type="text" name="q" value="{{.Q}}" placeholder="Search brands">
<button>Search</button>
</form>
<p><a href="/brands/new">New brand</a></p>
<table>
<tr><th>Name</th><th>Pharma</th><th>Therapeutic area</th><th>Created</th></tr>
{{range .Brands}}<tr>
<td><a href="/brands/{{.ID}}">{{.Name}}</a></td>
<td>{{.Pharma}}</td>
<td>{{.TherapeuticArea}}</td>
<td>{{.CreatedAt.Format "2006-01-02"}}</td>
</tr>{{end}}
</table>
{{template "foot" .}}{{end}}

{{define "brand_form_fields"}}
<label>Name <input name="name" value="{{.Name}}"></label>
<label>Pharma <input name="pharma" value="{{.Pharma}}"></label>
<label>Therapeutic area <input name="therapeutic_area" value="{{.TherapeuticArea}}"></label>
{{end}}

{{define "brand_new"}}{{template "head" .}}
<form method="post" action="/brands/new">
{{template "brand_form_fields" .Form}}
<button>Create</button>
</form>
{{template "foot" .}}{{end}}

{{define "brand_detail"}}{{template "head" .}}
<form method="post" action="/brands/{{.Brand.ID}}/edit">
{{template "brand_form_fields" .Brand}}
<button>Save</button>
</form>
<form method="post" action="/brands/{{.Brand.ID}}/delete">
<button>Delete brand and everything under it</button>
</form>
<h2>Campaigns</h2>
<table>
<tr><th>Name</th><th>Status</th><th>Business unit</th></tr>
{{range .Campaigns}}<tr>
<td><a href="/campaigns/{{.ID}}">{{.Name}}</a></td>
<td>{{.Status}}</td>
<td>{{.BusinessUnit}}</td>
</tr>{{end}}
</table>
<p><a href="/campaigns/new?brand_id={{.Brand.ID}}">New campaign</a></p>
{{template "foot" .}}{{end}}

{{define "campaign_list"}}{{template "head" .}}
<form method="get" action="/campaigns">
<input type="text" name="q" value="{{.Q}}" placeholder="Search campaigns">
<select name="status">
<option value="">any status</option>
{{range .Statuses}}<option value="{{.}}" {{if eq (printf "%s" .) $.Status}}selected{{end}}>{{.}}</option>{{end}}
</select>
<button>Search</button>
</form>
<p><a href="/campaigns/new">New campaign</a></p>
<table>
<tr><th>Name</th><th>Status</th><th>Business unit</th><th>Created</th></tr>
{{range .Campaigns}}<tr>
<td><a href="/campaigns/{{.ID}}">{{.Name}}</a></td>
<td>{{.Status}}</td>
<td>{{.BusinessUnit}}</td>
<td>{{.CreatedAt.Format "2006-01-02"}}</td>
</tr>{{end}}
</table>
{{template "foot" .}}{{end}}

{{define "campaign_form_fields"}}
<label>Name <input name="name" value="{{.Form.Name}}"></label>
<label>Brand
<select name="brand_id">
{{range .Brands}}<option value="{{.ID}}" {{if eq .ID $.Form.BrandID}}selected{{end}}>{{.Name}}</option>{{end}}
</select>
</label>
<label>Business unit <input name="business_unit" value="{{.Form.BusinessUnit}}"></label>
<label>Status
<select name="status">
{{range .Statuses}}<option value="{{.}}" {{if eq . $.Form.Status}}selected{{end}}>{{.}}</option>{{end}}
</select>
</label>
<label>Start date <input type="date" name="start_date" value="{{if .Form.StartDate}}{{.Form.StartDate.Format "2006-01-02"}}{{end}}"></label>
<label>End date <input type="date" name="end_date" value="{{if .Form.EndDate}}{{.Form.EndDate.Format "2006-01-02"}}{{end}}"></label>
{{end}}

{{define "campaign_new"}}{{template "head" .}}
<form method="post" action="/campaigns/new">
{{template "campaign_form_fields" .}}
<button>Create</button>
</form>
{{template "foot" .}}{{end}}

{{define "campaign_detail"}}{{template "head" .}}
<form method="post" action="/campaigns/{{.Form.ID}}/edit">
{{template "campaign_form_fields" .}}
<button>Save</button>
</form>
<form method="post" action="/campaigns/{{.Form.ID}}/delete">
<button>Delete campaign and everything under it</button>
</form>
<h2>Programs</h2>
<table>
<tr><th>Name</th><th>Type</th><th>Platform</th></tr>
{{range .Programs}}<tr>
<td><a href="/programs/{{.ID}}">{{.Name}}</a></td>
<td>{{.ProgramType}}</td>
<td>{{.Platform}}</td>
</tr>{{end}}
</table>
<p><a href="/programs/new?campaign_id={{.Form.ID}}">New program</a></p>
{{template "foot" .}}{{end}}

{{define "program_list"}}{{template "head" .}}
<form method="get" action="/programs">
<input type="text" name="q" value="{{.Q}}" placeholder="Search programs">
<button>Search</button>
</form>
<p><a href="/programs/new">New program</a></p>
<table>
<tr><th>Name</th><th>Type</th><th>Platform</th><th>Created</th></tr>
{{range .Programs}}<tr>
<td><a href="/programs/{{.ID}}">{{.Name}}</a></td>
<td>{{.ProgramType}}</td>
<td>{{.Platform}}</td>
<td>{{.CreatedAt.Format "2006-01-02"}}</td>
</tr>{{end}}
</table>
{{template "foot" .}}{{end}}

{{define "program_form_fields"}}
<label>Name <input name="name" value="{{.Form.Name}}"></label>
<label>Campaign
<select name="campaign_id">
{{range .Campaigns}}<option value="{{.ID}}" {{if eq .ID $.Form.CampaignID}}selected{{end}}>{{.Name}}</option>{{end}}
</select>
</label>
<label>Type <input name="program_type" value="{{.Form.ProgramType}}"></label>
<label>Platform <input name="platform" value="{{.Form.Platform}}"></label>
<label>External ref <input name="external_ref" value="{{if .Form.ExternalRef}}{{derefInt .Form.ExternalRef}}{{end}}"></label>
{{end}}

{{define "program_new"}}{{template "head" .}}
<form method="post" action="/programs/new">
{{template "program_form_fields" .}}
<button>Create</button>
</form>
{{template "foot" .}}{{end}}

{{define "program_detail"}}{{template "head" .}}
<form method="post" action="/programs/{{.Form.ID}}/edit">
{{template "program_form_fields" .}}
<button>Save</button>
</form>
<form method="post" action="/programs/{{.Form.ID}}/delete">
<button>Delete program and its placements</button>
</form>
<h2>Placements</h2>
<table>
<tr><th>Name</th><th>Channel</th><th>Veeva code</th><th>Ad server ID</th></tr>
{{range .Placements}}<tr>
<td><a href="/placements/{{.ID}}">{{.Name}}</a></td>
<td>{{.Channel}}</td>
<td>{{.VeevaCode}}</td>
<td>{{.AdServerID}}</td>
</tr>{{end}}
</table>
<p><a href="/placements/new?program_id={{.Form.ID}}">New placement</a></p>
{{template "foot" .}}{{end}}

{{define "placement_list"}}{{template "head" .}}
<form method="get" action="/placements">
<input type="text" name="q" value="{{.Q}}" placeholder="Search placements">
<select name="channel">
<option value="">any channel</option>
{{range .ChannelOptions}}<option value="{{.}}" {{if eq (printf "%s" .) $.Channel}}selected{{end}}>{{.}}</option>{{end}}
</select>
<button>Search</button>
</form>
<p><a href="/placements/new">New placement</a></p>
<table>
<tr><th>Name</th><th>Channel</th><th>Veeva code</th><th>Ad server ID</th><th>Created</th></tr>
{{range .Placements}}<tr>
<td><a href="/placements/{{.ID}}">{{.Name}}</a></td>
<td>{{.Channel}}</td>
<td>{{.VeevaCode}}</td>
<td>{{.AdServerID}}</td>
<td>{{.CreatedAt.Format "2006-01-02"}}</td>
</tr>{{end}}
</table>
{{template "foot" .}}{{end}}

{{define "placement_form_fields"}}
<label>Name <input name="name" value="{{.Form.Name}}"></label>
<label>Program
<select name="program_id">
{{range .Programs}}<option value="{{.ID}}" {{if eq .ID $.Form.ProgramID}}selected{{end}}>{{.Name}}</option>{{end}}
</select>
</label>
<label>Channel
<select name="channel">
{{range .ChannelOptions}}<option value="{{.}}" {{if eq . $.Form.Channel}}selected{{end}}>{{.}}</option>{{end}}
</select>
</label>
<label>Veeva code <input name="veeva_code" value="{{.Form.VeevaCode}}"></label>
<label>Ad server ID <input name="ad_server_id" value="{{.Form.AdServerID}}"></label>
{{end}}

{{define "placement_new"}}{{template "head" .}}
<form method="post" action="/placements/new">
{{template "placement_form_fields" .}}
<button>Create</button>
</form>
{{template "foot" .}}{{end}}

{{define "placement_detail"}}{{template "head" .}}
<form method="post" action="/placements/{{.Form.ID}}/edit">
{{template "placement_form_fields" .}}
<button>Save</button>
</form>
<form method="post" action="/placements/{{.Form.ID}}/delete">
<button>Delete placement</button>
</form>
{{template "foot" .}}{{end}}
`
