package util

import "cpu-scheduler/internal/responses"

// CalculateAverage averages over completed processes only.
func CalculateAverage(proccessDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTurnAroundTime, averageNormalizedTurnAround float64) {
	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64
	var normalizedSum float64
	var proccessCount float64

	for _, proccess := range proccessDetails {
		if !proccess.Completed {
			continue
		}
		waitingTimeSum += proccess.WaitingTime
		responseTimeSum += proccess.ResponseTime
		turnAroundTimeSum += proccess.TurnAroundTime
		normalizedSum += proccess.NormalizedTurnAround
		proccessCount++
	}
	if proccessCount == 0 {
		return
	}

	averageWaitingTime = waitingTimeSum / proccessCount
	averageResponseTime = responseTimeSum / proccessCount
	averageTurnAroundTime = turnAroundTimeSum / proccessCount
	averageNormalizedTurnAround = normalizedSum / proccessCount
	return
}
