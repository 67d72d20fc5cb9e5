package model

import "fmt"

type Regressor interface {
	Predict(rows [][]float64) ([]float64, error)
}

type LinearRegressor struct {
	Intercept    float64
	Coefficients []float64
}

func (m LinearRegressor) Predict(rows [][]float64) ([]float64, error) {
	out := make([]float64, 0, len(rows))
	for i, r := range rows {
		if len(r) != len(m.Coefficients) {
			return nil, fmt.Errorf("%w: row %d has %d columns, model expects %d", ErrShape, i, len(r), len(m.Coefficients))
		}
		y := m.Intercept
		for j, x := range r {
			y += m.Coefficients[j] * x
		}
		out = append(out, y)
	}
	return out, nil
}

const leaf = -1

// Tree is a fitted regression tree in scikit-learn's flat array layout.
// Children always have a larger index than their parent.
type Tree struct {
	ChildrenLeft  []int     `yaml:"children_left" validate:"required"`
	ChildrenRight []int     `yaml:"children_right" validate:"required"`
	Feature       []int     `yaml:"feature" validate:"required"`
	Threshold     []float64 `yaml:"threshold" validate:"required"`
	Value         []float64 `yaml:"value" validate:"required"`
}

func (t Tree) eval(x []float64) float64 {
	node := 0
	for t.ChildrenLeft[node] != leaf {
		if x[t.Feature[node]] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	return t.Value[node]
}

func (t Tree) check(width int) error {
	n := len(t.ChildrenLeft)
	if n == 0 {
		return fmt.Errorf("empty tree")
	}
	if len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
		return fmt.Errorf("tree arrays differ in length")
	}
	for i := 0; i < n; i++ {
		l, r := t.ChildrenLeft[i], t.ChildrenRight[i]
		if l == leaf || r == leaf {
			if l != r {
				return fmt.Errorf("node %d has a single child", i)
			}
			continue
		}
		if l <= i || l >= n || r <= i || r >= n {
			return fmt.Errorf("node %d has out of order children (%d, %d)", i, l, r)
		}
		if t.Feature[i] < 0 || t.Feature[i] >= width {
			return fmt.Errorf("node %d splits on feature %d", i, t.Feature[i])
		}
	}
	return nil
}

const (
	AggregateMean = "mean"
	AggregateSum  = "sum"
)

// TreeEnsemble covers random forests (mean of trees) and gradient boosting
// (base score plus learning rate times the sum of trees).
type TreeEnsemble struct {
	Trees        []Tree
	Aggregation  string
	BaseScore    float64
	LearningRate float64
	Width        int
}

func (m TreeEnsemble) Predict(rows [][]float64) ([]float64, error) {
	out := make([]float64, 0, len(rows))
	for i, r := range rows {
		if len(r) != m.Width {
			return nil, fmt.Errorf("%w: row %d has %d columns, model expects %d", ErrShape, i, len(r), m.Width)
		}
		sum := 0.0
		for _, t := range m.Trees {
			sum += t.eval(r)
		}
		switch m.Aggregation {
		case AggregateSum:
			out = append(out, m.BaseScore+m.LearningRate*sum)
		default:
			out = append(out, sum/float64(len(m.Trees)))
		}
	}
	return out, nil
}
