package oclint

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

var testCategory = Category{Name: "category name", Severity: SEVERITY_MAJOR}

func parseSection(t *testing.T, doc string) *goquery.Selection {
	t.Helper()
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	return parsed.Find("div.section").First()
}

const simpleRuleDoc = `<div class="section" id="bitwiseoperatorinconditional">
<h2>BitwiseOperatorInConditional<a class="headerlink" href="#bitwiseoperatorinconditional" title="Permalink to this headline">¶</a></h2>
<p><strong>Since: 0.6</strong></p>
<p><strong>Name: bitwise operator in conditional</strong></p>
<p>Checks for bitwise operations in conditionals. Although being written on purpose in some rare cases, bitwise operations are considered to be too “smart”. Smart code is not easy to understand.</p>
<p>This rule is defined by the following class: <a class="reference external" href="https://github.com/oclint/oclint/blob/master/oclint-rules/rules/basic/BitwiseOperatorInConditionalRule.cpp">oclint-rules/rules/basic/BitwiseOperatorInConditionalRule.cpp</a></p>
<p><strong>Example:</strong></p>
<div class="highlight-cpp"><div class="highlight"><pre><span></span><span class="kt">void</span> <span class="nf">example</span><span class="p">(</span><span class="kt">int</span> <span class="n">a</span><span class="p">,</span> <span class="kt">int</span> <span class="n">b</span><span class="p">)</span>
<span class="p">{</span>
    <span class="k">if</span> <span class="p">(</span><span class="n">a</span> <span class="o">|</span> <span class="n">b</span><span class="p">)</span>
    <span class="p">{</span>
    <span class="p">}</span>
    <span class="k">if</span> <span class="p">(</span><span class="n">a</span> <span class="o">&amp;</span> <span class="n">b</span><span class="p">)</span>
    <span class="p">{</span>
    <span class="p">}</span>
<span class="p">}</span>
</pre></div>
</div>
</div>`

const simpleRuleDescription = `<p>Checks for bitwise operations in conditionals. Although being written on purpose in some rare cases, bitwise operations are considered to be too “smart”. Smart code is not easy to understand.</p>
<p>This rule is defined by the following class: <a class="reference external" href="https://github.com/oclint/oclint/blob/master/oclint-rules/rules/basic/BitwiseOperatorInConditionalRule.cpp">oclint-rules/rules/basic/BitwiseOperatorInConditionalRule.cpp</a></p>
<p><strong>Example:</strong></p>
<pre>void example(int a, int b)
{
    if (a | b)
    {
    }
    if (a & b)
    {
    }
}</pre>`

const advancedRuleDoc = `<div class="section" id="highnpathcomplexity">
<h2>HighNPathComplexity<a class="headerlink" href="#highnpathcomplexity" title="Permalink to this headline">¶</a></h2>
<p><strong>Since: 0.4</strong></p>
<p><strong>Name: high npath complexity</strong></p>
<p>NPath complexity is determined by the number of execution paths through that method.
Compared to cyclomatic complexity, NPath complexity has two outstanding characteristics:
first, it distinguishes between different kinds of control flow structures;
second, it takes the various type of acyclic paths in a flow graph into consideration.</p>
<p>Based on studies done by the original author in AT&amp;T Bell Lab,
an NPath threshold value of 200 has been established for a method.</p>
<p>This rule is defined by the following class: <a class="reference external" href="https://github.com/oclint/oclint/blob/master/oclint-rules/rules/size/NPathComplexityRule.cpp">oclint-rules/rules/size/NPathComplexityRule.cpp</a></p>
<p><strong>Example:</strong></p>
<div class="highlight-cpp"><div class="highlight"><pre><span></span><span class="kt">void</span> <span class="nf">example</span><span class="p">()</span>
<span class="p">{</span>
    <span class="c1">// complicated code that is hard to understand</span>
<span class="p">}</span>
</pre></div>
</div>
<p><strong>Thresholds:</strong></p>
<dl class="docutils">
<dt>NPATH_COMPLEXITY</dt>
<dd>The NPath complexity reporting threshold, default value is 200.</dd>
</dl>
<p><strong>Suppress:</strong></p>
<div class="highlight-cpp"><div class="highlight"><pre><span></span><span class="n">__attribute__</span><span class="p">((</span><span class="n">annotate</span><span class="p">(</span><span class="s">"oclint:suppress[high npath complexity]"</span><span class="p">)))</span>
</pre></div>
</div>
<p><strong>References:</strong></p>
<p>Brian A. Nejmeh  (1988). <a class="reference external" href="http://dl.acm.org/citation.cfm?id=42379">“NPATH: a measure of execution path complexity and its applications”</a>. <em>Communications of the ACM 31 (2) p. 188-200</em></p>
</div>`

const advancedRuleDescription = `<p>NPath complexity is determined by the number of execution paths through that method. Compared to cyclomatic complexity, NPath complexity has two outstanding characteristics: first, it distinguishes between different kinds of control flow structures; second, it takes the various type of acyclic paths in a flow graph into consideration.</p>
<p>Based on studies done by the original author in AT&amp;T Bell Lab, an NPath threshold value of 200 has been established for a method.</p>
<p>This rule is defined by the following class: <a class="reference external" href="https://github.com/oclint/oclint/blob/master/oclint-rules/rules/size/NPathComplexityRule.cpp">oclint-rules/rules/size/NPathComplexityRule.cpp</a></p>
<p><strong>Example:</strong></p>
<pre>void example()
{
    // complicated code that is hard to understand
}</pre>
<p><strong>Thresholds:</strong></p>
<dl><dt> NPATH_COMPLEXITY</dt> <dd> The NPath complexity reporting threshold, default value is 200.</dd></dl>
<p><strong>Suppress:</strong></p>
<pre>__attribute__((annotate("oclint:suppress[high npath complexity]")))</pre>
<p><strong>References:</strong></p>
<p>Brian A. Nejmeh (1988). <a class="reference external" href="http://dl.acm.org/citation.cfm?id=42379">“NPATH: a measure of execution path complexity and its applications”</a>. <em>Communications of the ACM 31 (2) p. 188-200</em></p>`

func TestRuleFromSimpleDescription(t *testing.T) {
	rule, err := RuleFromSelection(testCategory, parseSection(t, simpleRuleDoc))
	if err != nil {
		t.Fatal(err)
	}

	require.Equal(t, "bitwise operator in conditional", rule.Key)
	require.Equal(t, "Bitwise operator in conditional", rule.Name)
	require.Equal(t, simpleRuleDescription, rule.Description)
	require.Equal(t, "category name", rule.Category)
	require.Equal(t, SEVERITY_MAJOR, rule.Severity)
	require.Equal(t, TYPE_CODE_SMELL, rule.Type)
	require.NotNil(t, rule.Since)
	require.Equal(t, "0.6.0", rule.Since.String())
}

func TestRuleFromAdvancedDescription(t *testing.T) {
	rule, err := RuleFromSelection(testCategory, parseSection(t, advancedRuleDoc))
	if err != nil {
		t.Fatal(err)
	}

	require.Equal(t, "high npath complexity", rule.Key)
	require.Equal(t, "High npath complexity", rule.Name)
	require.Equal(t, advancedRuleDescription, rule.Description)
	require.Equal(t, "0.4.0", rule.Since.String())
}

func TestRuleFromSelectionEdgeCases(t *testing.T) {
	t.Run("no since paragraph", func(t *testing.T) {
		doc := `<div class="section">
<h2>BrokenOddnessCheck</h2>
<p><strong>Name: broken oddness check</strong></p>
<p>Checks for oddness checks that do not work with negative numbers.</p>
</div>`
		rule, err := RuleFromSelection(testCategory, parseSection(t, doc))
		if err != nil {
			t.Fatal(err)
		}
		require.Nil(t, rule.Since)
		require.Equal(t, "Broken oddness check", rule.Name)
		require.Equal(t, TYPE_BUG, rule.Type)
		require.Equal(t, "<p>Checks for oddness checks that do not work with negative numbers.</p>", rule.Description)
	})

	t.Run("unparseable since", func(t *testing.T) {
		doc := `<div class="section">
<p><strong>Since: unreleased</strong></p>
<p><strong>Name: dead code</strong></p>
</div>`
		rule, err := RuleFromSelection(testCategory, parseSection(t, doc))
		if err != nil {
			t.Fatal(err)
		}
		require.Nil(t, rule.Since)
		require.Equal(t, "dead code", rule.Key)
		require.Equal(t, "", rule.Description)
	})

	t.Run("missing name", func(t *testing.T) {
		doc := `<div class="section">
<p><strong>Since: 0.8</strong></p>
<p>A rule without a name label.</p>
</div>`
		_, err := RuleFromSelection(testCategory, parseSection(t, doc))
		require.Error(t, err)
	})

	t.Run("paragraphs nested in definition lists", func(t *testing.T) {
		doc := `<div class="section">
<p><strong>Name: long line</strong></p>
<dl>
<dt>LONG_LINE</dt>
<dd><p>The long line reporting threshold, default value is 100.</p></dd>
</dl>
</div>`
		rule, err := RuleFromSelection(testCategory, parseSection(t, doc))
		if err != nil {
			t.Fatal(err)
		}
		require.Equal(
			t,
			"<dl><dt> LONG_LINE</dt> <dd> The long line reporting threshold, default value is 100.</dd></dl>",
			rule.Description,
		)
	})
}

func TestSortRules(t *testing.T) {
	rules := []Rule{
		{Name: "Long line", Category: "Size"},
		{Name: "Dead code", Category: "Basic"},
		{Name: "Empty if statement", Category: "Empty"},
	}
	SortRules(rules)

	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name
	}
	require.Equal(t, []string{"Dead code", "Empty if statement", "Long line"}, names)
}
