package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRPNEvaluator(t *testing.T) {
	t.Run("pushOperator", func(t *testing.T) {
		rpn := &rpnEvaluator{}
		rpn.pushOperand(10)
		rpn.pushOperand(20)

		require.NoError(t, rpn.pushOperator(opAdd))
		// only one operand in stack so the next operator push should fail
		require.Error(t, rpn.pushOperator(opSub))
	})

	t.Run("divideByZero", func(t *testing.T) {
		rpn := &rpnEvaluator{}
		rpn.pushOperand(10)
		rpn.pushOperand(0)

		err := rpn.pushOperator(opDiv)
		require.Error(t, err)
		require.True(t, IsInvalid(err))
	})

	t.Run("overflowingStep", func(t *testing.T) {
		rpn := &rpnEvaluator{}
		rpn.pushOperand(math.MaxFloat64)
		rpn.pushOperand(10)

		err := rpn.pushOperator(opMul)
		require.Error(t, err)
		require.True(t, IsInvalid(err))
	})

	t.Run("unusedOperands", func(t *testing.T) {
		rpn := &rpnEvaluator{}
		rpn.pushOperand(1)
		rpn.pushOperand(2)

		_, err := rpn.result()
		require.Error(t, err)
	})

	t.Run("resultCalculation", func(t *testing.T) {
		testCases := []struct {
			name       string
			operands   []float64
			operators  []operator
			wantResult float64
		}{
			{
				name:       "add",
				operands:   []float64{10, 2},
				operators:  []operator{opAdd},
				wantResult: 12,
			},
			{
				name:       "subtract",
				operands:   []float64{10, 2},
				operators:  []operator{opSub},
				wantResult: 8,
			},
			{
				name:       "multiply",
				operands:   []float64{10, 2},
				operators:  []operator{opMul},
				wantResult: 20,
			},
			{
				name:       "divide",
				operands:   []float64{10, 2},
				operators:  []operator{opDiv},
				wantResult: 5,
			},
			{
				name:       "multiply_subract_add",
				operands:   []float64{10, 2, 5, 9},
				operators:  []operator{opAdd, opSub, opMul},
				wantResult: -120,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				rpn := &rpnEvaluator{}
				for _, v := range tc.operands {
					rpn.pushOperand(v)
				}

				for _, op := range tc.operators {
					require.NoError(t, rpn.pushOperator(op))
				}

				haveResult, err := rpn.result()
				require.NoError(t, err)
				require.Equal(t, tc.wantResult, haveResult)
			})
		}
	})
}

func TestPrecedence(t *testing.T) {
	require.Equal(t, opMul.precedence(), opDiv.precedence())
	require.Equal(t, opAdd.precedence(), opSub.precedence())
	require.True(t, opMul.precedence() > opAdd.precedence())
}
