package app

import "html/template"

// homeIntroHTML returns the curated introduction shown above the dashboard
// on the home page.
func homeIntroHTML() template.HTML {
	return `
<div class="intro-body">
  <p><strong>zkEVM</strong> follows the work needed for Ethereum L1 validators to verify blocks with zero-knowledge proofs instead of re-executing them. Execution clients compile stateless guest programs, <a href="/zkvms">zkVMs</a> prove them, and consensus clients check the proof.</p>

  <div class="intro-columns">
    <section>
      <h3>Track</h3>
      <ul>
        <li>Progress per category on the <a href="/track">dashboard</a>.</li>
        <li>What unblocks what on the <a href="/track/roadmap">roadmap graph</a>.</li>
        <li>Security records on the <a href="/track/security">security</a> page.</li>
      </ul>
    </section>
    <section>
      <h3>Projects</h3>
      <ul>
        <li>Execution <a href="/clients">clients</a> and their guest programs.</li>
        <li>Every tracked <a href="/zkvms">zkVM</a> with audits and benchmarks.</li>
      </ul>
    </section>
    <section>
      <h3>Read</h3>
      <ul>
        <li>Start with the <a href="/learn">learning path</a>.</li>
        <li>Updates on the <a href="/blog">blog</a>, also as <a href="/rss.xml">RSS</a>.</li>
      </ul>
    </section>
  </div>
</div>`
}
